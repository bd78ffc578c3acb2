package bookingform

import (
	"context"

	"table-booking/internal/domain/reservation"
)

// Submission is the handle of one submit attempt. It resolves exactly once.
type Submission struct {
	draft  reservation.Draft
	cancel context.CancelFunc
	done   chan struct{}

	outcome Outcome
	err     error
}

func newSubmission(draft reservation.Draft, cancel context.CancelFunc) *Submission {
	return &Submission{
		draft:  draft,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func resolved(draft reservation.Draft, outcome Outcome, err error) *Submission {
	s := newSubmission(draft, func() {})
	s.resolve(outcome, err)
	return s
}

func (s *Submission) resolve(outcome Outcome, err error) {
	s.outcome = outcome
	s.err = err
	close(s.done)
}

// Done is closed once the outcome is known.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission resolves or ctx ends. An abandoned wait reports OutcomeDiscarded
// without cancelling the submission.
func (s *Submission) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-s.done:
		return s.outcome, s.err
	case <-ctx.Done():
		return OutcomeDiscarded, ctx.Err()
	}
}

// Outcome is meaningful only after Done is closed.
func (s *Submission) Outcome() Outcome {
	select {
	case <-s.done:
		return s.outcome
	default:
		return OutcomeDiscarded
	}
}

// Err holds the failure reason of an OutcomeFailed or OutcomeDiscarded submission.
func (s *Submission) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Draft is the snapshot that was sent to the backend.
func (s *Submission) Draft() reservation.Draft {
	return s.draft
}

// Cancel abandons the attempt. The form returns to idle and keeps its draft.
func (s *Submission) Cancel() {
	s.cancel()
}
