// Package workflow drives create, update and delete against the store.
//
// One controller serves one input surface. While a mutation is in flight the
// surface is busy and further mutations are rejected, so a double submit
// can't create duplicates. Failures are always returned to the caller; the
// surface keeps its input and decides how to show the message.
package workflow

import (
	"context"
	"errors"

	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/store"
)

type State int

const (
	Idle State = iota
	Submitting
)

// ErrBusy is returned when a mutation is requested while another one from the
// same surface is still in flight.
var ErrBusy = errors.New("another change is still in flight")

type Controller struct {
	store *store.Store
	state State
}

func New(st *store.Store) *Controller {
	return &Controller{store: st}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Store() *store.Store {
	return c.store
}

// Refresh reloads the store. Reads don't take the busy guard.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.store.LoadAll(ctx)
}

func (c *Controller) Create(ctx context.Context, draft model.Draft) (*model.Question, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()
	return c.store.Insert(ctx, draft)
}

func (c *Controller) Update(ctx context.Context, id model.ID, draft model.Draft) (*model.Question, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()
	return c.store.Update(ctx, id, draft)
}

// Delete runs confirm before anything leaves the machine. A declined
// confirmation returns (false, nil): no network call, store untouched.
func (c *Controller) Delete(ctx context.Context, id model.ID, confirm func() bool) (bool, error) {
	if c.state == Submitting {
		return false, ErrBusy
	}
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := c.begin(); err != nil {
		return false, err
	}
	defer c.end()

	if err := c.store.Remove(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Controller) begin() error {
	if c.state == Submitting {
		return ErrBusy
	}
	c.state = Submitting
	return nil
}

func (c *Controller) end() {
	c.state = Idle
}
