// Package clienttest provides an in-memory client.Client for tests.
package clienttest

import (
	"context"
	"fmt"

	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/model"
)

// Fake is an in-memory questions service. Setting Err makes every call fail
// without touching Items. Calls records the method names in order, so tests
// can assert that a declined confirmation never reached the network.
type Fake struct {
	Items  []model.Question
	Err    error
	Calls  []string
	nextID int
}

var _ client.Client = (*Fake)(nil)

func New(items ...model.Question) *Fake {
	return &Fake{Items: items}
}

func (f *Fake) Questions(ctx context.Context) ([]model.Question, error) {
	f.Calls = append(f.Calls, "Questions")
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]model.Question, len(f.Items))
	copy(out, f.Items)
	return out, nil
}

func (f *Fake) CreateQuestion(ctx context.Context, draft model.Draft) (*model.Question, error) {
	f.Calls = append(f.Calls, "CreateQuestion")
	if f.Err != nil {
		return nil, f.Err
	}
	f.nextID++
	q := model.Question{
		ID:     model.ID(fmt.Sprintf("q-%d", f.nextID)),
		Title:  draft.Title,
		Answer: draft.Answer,
		Tags:   draft.Tags,
	}
	f.Items = append(f.Items, q)
	return &q, nil
}

func (f *Fake) UpdateQuestion(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error) {
	f.Calls = append(f.Calls, "UpdateQuestion")
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		f.Items[i].Title = draft.Title
		f.Items[i].Answer = draft.Answer
		f.Items[i].Tags = draft.Tags
		q := f.Items[i]
		return &q, nil
	}
	return nil, &client.RemoteError{StatusCode: 404, Reason: "Question not found"}
}

func (f *Fake) DeleteQuestion(ctx context.Context, id model.ID) error {
	f.Calls = append(f.Calls, "DeleteQuestion")
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		f.Items = append(f.Items[:i], f.Items[i+1:]...)
		return nil
	}
	return &client.RemoteError{StatusCode: 404, Reason: "Question not found"}
}
