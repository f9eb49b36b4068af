// Package purchase implements the confirm/cancel interaction that requests a content unlock.
package purchase

import (
	"context"
	"fmt"

	"github.com/nstapp/content-library/internal/ledger"
	"github.com/nstapp/content-library/internal/models"
)

// State is a purchase flow state
type State string

const (
	StateIdle      State = "IDLE"
	StateRequested State = "REQUESTED"
	StateConfirmed State = "CONFIRMED"
	StateCancelled State = "CANCELLED"
)

// UnlockFunc hands an unlock request to the credit ledger.
// A nil error means the request was accepted, not that the debit already happened.
type UnlockFunc func(ctx context.Context, req models.PurchaseRequest) error

// Flow holds at most one pending purchase request.
//
// CONFIRMED and CANCELLED are passed through on the way back to IDLE; Outcome reports the
// last one reached.
type Flow struct {
	state   State
	outcome State
	request *models.PurchaseRequest
}

// NewFlow creates an idle purchase flow
func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

// State returns the current state
func (f *Flow) State() State {
	return f.state
}

// Outcome returns the terminal state of the last resolved request, or IDLE if none was resolved
func (f *Flow) Outcome() State {
	if f.outcome == "" {
		return StateIdle
	}
	return f.outcome
}

// Active returns the pending request, if any
func (f *Flow) Active() (models.PurchaseRequest, bool) {
	if f.state != StateRequested || f.request == nil {
		return models.PurchaseRequest{}, false
	}
	return *f.request, true
}

// Request opens the flow for req. Only one request can be pending at a time.
func (f *Flow) Request(req models.PurchaseRequest) error {
	if f.state != StateIdle {
		return fmt.Errorf("%w: purchase already pending", models.ErrInvalidAction)
	}
	f.request = &req
	f.state = StateRequested
	return nil
}

// Prompt renders the pending request against balance, or returns nil when idle
func (f *Flow) Prompt(balance int) *models.PurchasePrompt {
	req, ok := f.Active()
	if !ok {
		return nil
	}

	canAfford := ledger.CanAfford(balance, req.Price)
	prompt := &models.PurchasePrompt{
		Title:          req.Title,
		Price:          req.Price,
		ContentID:      req.ContentID,
		Balance:        balance,
		CanAfford:      canAfford,
		ConfirmEnabled: canAfford,
	}
	if !canAfford {
		prompt.Shortfall = ledger.Shortfall(balance, req.Price)
		prompt.Message = fmt.Sprintf("You need %d more credits.", prompt.Shortfall)
	}
	return prompt
}

// Confirm resolves the pending request by invoking unlock exactly once.
//
// The action is unavailable when balance does not cover the price: ErrInsufficientCredits is
// returned and the request stays pending. Otherwise the flow returns to IDLE whatever unlock
// returns; an unlock error is wrapped in ErrUnlockFailed.
func (f *Flow) Confirm(ctx context.Context, balance int, unlock UnlockFunc) (models.PurchaseRequest, error) {
	req, err := f.Begin(balance)
	if err != nil {
		return req, err
	}

	err = unlock(ctx, req)
	f.Complete()

	if err != nil {
		return req, fmt.Errorf("%w: %v", models.ErrUnlockFailed, err)
	}
	return req, nil
}

// Begin moves the pending request to CONFIRMED and returns it for delivery.
//
// While CONFIRMED no request is active and no new one can be opened. Complete must follow once
// the unlock call returned.
func (f *Flow) Begin(balance int) (models.PurchaseRequest, error) {
	req, ok := f.Active()
	if !ok {
		return models.PurchaseRequest{}, models.ErrNoActivePurchase
	}
	if !ledger.CanAfford(balance, req.Price) {
		return req, fmt.Errorf("%w: need %d more", models.ErrInsufficientCredits, ledger.Shortfall(balance, req.Price))
	}

	f.state = StateConfirmed
	return req, nil
}

// Complete returns a CONFIRMED flow to IDLE. It is a no-op if the flow was reset meanwhile.
func (f *Flow) Complete() {
	if f.state != StateConfirmed {
		return
	}
	f.finish(StateConfirmed)
}

// Cancel discards the pending request
func (f *Flow) Cancel() error {
	if _, ok := f.Active(); !ok {
		return models.ErrNoActivePurchase
	}
	f.state = StateCancelled
	f.finish(StateCancelled)
	return nil
}

// Reset drops any pending request without recording an outcome
func (f *Flow) Reset() {
	f.state = StateIdle
	f.request = nil
}

func (f *Flow) finish(outcome State) {
	f.outcome = outcome
	f.request = nil
	f.state = StateIdle
}
