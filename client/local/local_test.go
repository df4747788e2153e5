package local_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prepqhq/prepq-cli/client/local"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempStore(t *testing.T) {
	t.Helper()
	orig := storage.DefaultPath
	storage.DefaultPath = filepath.Join(t.TempDir(), "questions.local")
	t.Cleanup(func() { storage.DefaultPath = orig })
}

func TestLocalClientRoundTrip(t *testing.T) {
	useTempStore(t)
	ctx := context.Background()
	cl := local.New()

	questions, err := cl.Questions(ctx)
	require.NoError(t, err)
	assert.Empty(t, questions)

	first, err := cl.CreateQuestion(ctx, model.Draft{Title: "first", Tags: []string{"a", "b"}})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := cl.CreateQuestion(ctx, model.Draft{Title: "second"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	questions, err = cl.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	// insertion order preserved, tag order untouched
	assert.Equal(t, "first", questions[0].Title)
	assert.Equal(t, []string{"a", "b"}, questions[0].Tags)
	assert.Equal(t, "second", questions[1].Title)
}

func TestLocalClientUpdate(t *testing.T) {
	useTempStore(t)
	ctx := context.Background()
	cl := local.New()

	q, err := cl.CreateQuestion(ctx, model.Draft{Title: "before"})
	require.NoError(t, err)

	updated, err := cl.UpdateQuestion(ctx, q.ID, model.Draft{Title: "after", Answer: "body"})
	require.NoError(t, err)
	assert.Equal(t, q.ID, updated.ID)
	assert.Equal(t, "after", updated.Title)

	questions, err := cl.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "after", questions[0].Title)
}

func TestLocalClientUpdateUnknownID(t *testing.T) {
	useTempStore(t)

	_, err := local.New().UpdateQuestion(context.Background(), "missing", model.Draft{})
	assert.ErrorIs(t, err, local.ErrNotFound)
}

func TestLocalClientDelete(t *testing.T) {
	useTempStore(t)
	ctx := context.Background()
	cl := local.New()

	q, err := cl.CreateQuestion(ctx, model.Draft{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, cl.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, cl.DeleteQuestion(ctx, q.ID), local.ErrNotFound)

	questions, err := cl.Questions(ctx)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
