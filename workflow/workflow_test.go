package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prepqhq/prepq-cli/client/clienttest"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/store"
	"github.com/prepqhq/prepq-cli/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, items ...model.Question) (*workflow.Controller, *clienttest.Fake) {
	t.Helper()
	fake := clienttest.New(items...)
	st := store.New(fake)
	require.NoError(t, st.LoadAll(context.Background()))
	fake.Calls = nil
	return workflow.New(st), fake
}

func TestCreateReturnsToIdle(t *testing.T) {
	ctl, _ := newController(t)

	q, err := ctl.Create(context.Background(), model.Draft{Title: "t"})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, workflow.Idle, ctl.State())
	assert.Equal(t, 1, ctl.Store().Len())
}

func TestCreateFailureReturnsToIdleWithStoreIntact(t *testing.T) {
	existing := model.Question{ID: "1", Title: "keep me"}
	ctl, fake := newController(t, existing)

	fake.Err = errors.New("boom")
	_, err := ctl.Create(context.Background(), model.Draft{Title: "t"})
	require.Error(t, err)
	assert.Equal(t, workflow.Idle, ctl.State())
	assert.Equal(t, []model.Question{existing}, ctl.Store().List())
}

func TestDeleteDeclinedMakesNoNetworkCall(t *testing.T) {
	existing := model.Question{ID: "1", Title: "keep me"}
	ctl, fake := newController(t, existing)

	deleted, err := ctl.Delete(context.Background(), "1", func() bool { return false })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, fake.Calls, "a declined confirmation must not touch the network")
	assert.Equal(t, 1, ctl.Store().Len())
	assert.Equal(t, workflow.Idle, ctl.State())
}

func TestDeleteConfirmedRemovesExactlyOne(t *testing.T) {
	ctl, _ := newController(t,
		model.Question{ID: "1", Title: "a"},
		model.Question{ID: "2", Title: "b"},
	)

	deleted, err := ctl.Delete(context.Background(), "1", func() bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, ctl.Store().Len())
	_, ok := ctl.Store().Get("1")
	assert.False(t, ok)
}

func TestDeleteSurfacesTheRemoteReason(t *testing.T) {
	ctl, _ := newController(t)

	_, err := ctl.Delete(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.Equal(t, "Question not found", err.Error())
}
