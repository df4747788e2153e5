// Package local implements client.Client on top of a file in the config dir.
// It is the fallback when no remote questions service is configured, so the
// tool is usable before running `prepq login`.
package local

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/storage"
)

var ErrNotFound = errors.New("not found")

func New() client.Client {
	return &local{}
}

type local struct{}

var _ client.Client = (*local)(nil)

func (l *local) Questions(ctx context.Context) ([]model.Question, error) {
	stored, err := storage.Read()
	if err != nil {
		return nil, err
	}

	var questions []model.Question
	for _, q := range stored {
		questions = append(questions, *q)
	}
	return questions, nil
}

func (l *local) CreateQuestion(ctx context.Context, draft model.Draft) (*model.Question, error) {
	stored, err := storage.Read()
	if err != nil {
		return nil, err
	}

	q := &model.Question{
		ID:     model.ID(uuid.NewString()),
		Title:  draft.Title,
		Answer: draft.Answer,
		Tags:   draft.Tags,
	}
	stored = append(stored, q)
	if err := storage.Write(stored); err != nil {
		return nil, err
	}
	return q, nil
}

func (l *local) UpdateQuestion(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error) {
	stored, err := storage.Read()
	if err != nil {
		return nil, err
	}

	for _, q := range stored {
		if q.ID != id {
			continue
		}
		q.Title = draft.Title
		q.Answer = draft.Answer
		q.Tags = draft.Tags
		if err := storage.Write(stored); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
}

func (l *local) DeleteQuestion(ctx context.Context, id model.ID) error {
	stored, err := storage.Read()
	if err != nil {
		return err
	}

	for i, q := range stored {
		if q.ID != id {
			continue
		}
		stored = append(stored[:i], stored[i+1:]...)
		return storage.Write(stored)
	}
	return fmt.Errorf("question %s: %w", id, ErrNotFound)
}
