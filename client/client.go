package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/prepqhq/prepq-cli/authz"
	"github.com/prepqhq/prepq-cli/config"
	"github.com/prepqhq/prepq-cli/model"
)

// Client talks to the questions service. The store and the workflow
// controller only ever see this interface, so tests and the local fallback
// can substitute their own implementations.
type Client interface {
	Questions(ctx context.Context) ([]model.Question, error)
	CreateQuestion(ctx context.Context, draft model.Draft) (*model.Question, error)
	UpdateQuestion(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id model.ID) error
}

type client struct {
	cl      *http.Client
	apiHost string
}

var _ Client = (*client)(nil)

func New() (Client, error) {
	cfg, err := config.LoadFromFile()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load config", ErrInvalidClient)
	}
	if cfg.APIHost == "" {
		return nil, fmt.Errorf("%w: no api host configured", ErrInvalidClient)
	}

	return NewWithHTTPClient(cfg.APIHost, &http.Client{
		Transport: authz.NewRoundTripper(cfg.Token, config.Version()),
	}), nil
}

// NewWithHTTPClient builds a Client against an explicit host. Tests point it
// at an httptest server.
func NewWithHTTPClient(apiHost string, cl *http.Client) Client {
	return &client{cl: cl, apiHost: apiHost}
}

// apiURL returns the full url to the api endpoint
// path must start with a slash. e.g. /api/v1/questions
// apiURL will add a slash if it's missing
func (c *client) apiURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiHost + path
}

func (c *client) Questions(ctx context.Context) ([]model.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("/api/v1/questions"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteErr(resp)
	}

	var questions []model.Question
	if err := decodeJSON(resp, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *client) CreateQuestion(ctx context.Context, draft model.Draft) (*model.Question, error) {
	return c.sendDraft(ctx, http.MethodPost, c.apiURL("/api/v1/questions"), draft)
}

func (c *client) UpdateQuestion(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error) {
	return c.sendDraft(ctx, http.MethodPut, c.apiURL("/api/v1/questions/"+id.String()), draft)
}

func (c *client) DeleteQuestion(ctx context.Context, id model.ID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiURL("/api/v1/questions/"+id.String()), nil)
	if err != nil {
		return err
	}
	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return remoteErr(resp)
	}
	return nil
}

func (c *client) sendDraft(ctx context.Context, method, url string, draft model.Draft) (*model.Question, error) {
	bs, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, remoteErr(resp)
	}

	var question model.Question
	if err := decodeJSON(resp, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func decodeJSON(resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
