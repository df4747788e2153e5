package cmd

import (
	"context"

	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/client/local"
)

// newClient returns the remote client when one is configured, otherwise the
// file-backed local client so every command works before `prepq login`.
func newClient(ctx context.Context) client.Client {
	logger := loggerFromCtx(ctx)

	cl, err := client.New()
	if err != nil {
		logger.Debug("no remote configured, falling back to local question store", "error", err)
		return local.New()
	}
	return cl
}
