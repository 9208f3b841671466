package domain

import (
	"context"
	"sync"
)

// Comparison describes one comparison request handed to the view surface.
// ShowMerge controls whether the view offers resolution actions.
type Comparison struct {
	File1     VaultFile
	File2     VaultFile
	ShowMerge bool
}

// ReviewDecision is the one-shot continuation between a comparison view and
// a suspended review workflow. It resolves exactly once; later calls to
// Resolve are ignored, so a stale view cannot re-drive a workflow.
type ReviewDecision struct {
	once sync.Once
	ch   chan bool
}

// NewReviewDecision returns an unresolved decision.
func NewReviewDecision() *ReviewDecision {
	return &ReviewDecision{ch: make(chan bool, 1)}
}

// Resolve records whether the review should continue. Only the first call
// has any effect.
func (d *ReviewDecision) Resolve(shouldContinue bool) {
	d.once.Do(func() { d.ch <- shouldContinue })
}

// Wait blocks until the decision resolves or ctx is cancelled. Cancellation
// reads as a stop.
func (d *ReviewDecision) Wait(ctx context.Context) (bool, error) {
	select {
	case v := <-d.ch:
		return v, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// ComparisonSession is one opened comparison view. Decision resolves when
// the view closes or the session is superseded; a sequential review
// workflow waits on it before advancing, other flows leave it unobserved.
type ComparisonSession struct {
	ID         string
	Comparison Comparison
	Decision   *ReviewDecision
}

// Continue resolves the session's decision when one is attached.
func (s *ComparisonSession) Continue(shouldContinue bool) {
	if s.Decision != nil {
		s.Decision.Resolve(shouldContinue)
	}
}
