package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsDecodesTheCollectionInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/questions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 2, "title": "second", "answer": "", "tags": ["sql"]},
			{"id": 1, "title": "first", "answer": "a", "tags": ["golang", "concurrency"]}
		]`))
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	questions, err := cl.Questions(context.Background())
	require.NoError(t, err)

	// server order preserved, integer ids decode as strings
	require.Len(t, questions, 2)
	assert.Equal(t, model.ID("2"), questions[0].ID)
	assert.Equal(t, model.ID("1"), questions[1].ID)
	assert.Equal(t, []string{"golang", "concurrency"}, questions[1].Tags)
}

func TestCreateQuestionSendsTheDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/questions", r.URL.Path)

		var draft model.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "title", draft.Title)
		assert.Equal(t, []string{"a", "b"}, draft.Tags)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "42", "title": "title", "answer": "body", "tags": ["a", "b"]}`))
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	q, err := cl.CreateQuestion(context.Background(), model.Draft{
		Title:  "title",
		Answer: "body",
		Tags:   []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ID("42"), q.ID)
}

func TestUpdateQuestionHitsTheIDPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/questions/42", r.URL.Path)
		w.Write([]byte(`{"id": "42", "title": "new", "answer": "", "tags": []}`))
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	q, err := cl.UpdateQuestion(context.Background(), "42", model.Draft{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", q.Title)
}

func TestDeleteQuestionAcceptsEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/questions/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	assert.NoError(t, cl.DeleteQuestion(context.Background(), "7"))
}

func TestRemoteRejectionReasonIsSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Can't create question"}`))
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	_, err := cl.CreateQuestion(context.Background(), model.Draft{Title: "t"})
	require.Error(t, err)

	var remoteErr *client.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Can't create question", remoteErr.Reason)
	assert.Equal(t, "Can't create question", err.Error())
}

func TestRejectionWithoutReasonFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	err := cl.DeleteQuestion(context.Background(), "7")
	require.Error(t, err)

	var remoteErr *client.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, "request failed with status 404", err.Error())
}

func TestMalformedBodyIsADecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	cl := client.NewWithHTTPClient(srv.URL, srv.Client())
	_, err := cl.Questions(context.Background())
	assert.ErrorIs(t, err, client.ErrDecode)
}

func TestUnreachableHostIsATransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut it down before the call

	cl := client.NewWithHTTPClient(srv.URL, http.DefaultClient)
	_, err := cl.Questions(context.Background())
	assert.ErrorIs(t, err, client.ErrTransport)
}
