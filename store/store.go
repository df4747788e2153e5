// Package store mirrors the remote question collection in memory.
//
// The store is the single source of truth for rendering. Create and update go
// through a full reload because the remote assigns ids; delete patches the
// local sequence directly. A failed call leaves the sequence untouched.
package store

import (
	"context"

	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/model"
)

type Store struct {
	cl        client.Client
	questions []model.Question
}

func New(cl client.Client) *Store {
	return &Store{cl: cl}
}

// LoadAll fetches the authoritative sequence and replaces the local one
// wholesale. On failure the local sequence is left as it was.
func (s *Store) LoadAll(ctx context.Context) error {
	questions, err := s.cl.Questions(ctx)
	if err != nil {
		return err
	}
	s.questions = questions
	return nil
}

// List returns a copy of the current sequence in server response order.
func (s *Store) List() []model.Question {
	out := make([]model.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

func (s *Store) Len() int {
	return len(s.questions)
}

func (s *Store) Get(id model.ID) (model.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

// Insert sends the draft and reloads the collection so the remote-assigned id
// lands in the store.
func (s *Store) Insert(ctx context.Context, draft model.Draft) (*model.Question, error) {
	q, err := s.cl.CreateQuestion(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := s.LoadAll(ctx); err != nil {
		return q, err
	}
	return q, nil
}

// Update sends the draft for id and reloads the collection.
func (s *Store) Update(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error) {
	q, err := s.cl.UpdateQuestion(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if err := s.LoadAll(ctx); err != nil {
		return q, err
	}
	return q, nil
}

// Remove deletes id remotely, then splices the matching entry out of the
// local sequence. No reload: the delete created no remote-assigned state.
func (s *Store) Remove(ctx context.Context, id model.ID) error {
	if err := s.cl.DeleteQuestion(ctx, id); err != nil {
		return err
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			break
		}
	}
	return nil
}
