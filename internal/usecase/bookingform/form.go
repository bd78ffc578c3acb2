package bookingform

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
)

// State is a copy of the form taken under its lock.
type State struct {
	Draft   reservation.Draft
	Errors  map[reservation.Field]string
	Touched []reservation.Field
	Status  Status
}

func (s State) IsSubmitting() bool {
	return s.Status == StatusSubmitting
}

func (s State) IsTouched(f reservation.Field) bool {
	for _, t := range s.Touched {
		if t == f {
			return true
		}
	}
	return false
}

// Form owns one reservation attempt: the draft, the errors shown for it, the fields the user
// has left at least once, and the submission status.
//
// Callers must not start a submission while another one is in flight. A second Start supersedes
// the first, whose result is then discarded.
type Form struct {
	submitter Submitter
	refresh   RefreshFunc
	clock     clock.Clock
	logger    *slog.Logger

	mu      sync.Mutex
	draft   reservation.Draft
	errors  map[reservation.Field]string
	touched map[reservation.Field]struct{}
	status  Status
	attempt uint64
	cancel  context.CancelFunc
}

type Option func(*Form)

func WithClock(clk clock.Clock) Option {
	return func(f *Form) {
		f.clock = clk
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// New builds an idle form. refresh may be nil.
func New(submitter Submitter, refresh RefreshFunc, opts ...Option) *Form {
	f := &Form{
		submitter: submitter,
		refresh:   refresh,
		clock:     clock.NewRealClock(),
		logger:    slog.Default(),
		errors:    map[reservation.Field]string{},
		touched:   map[reservation.Field]struct{}{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UpdateField stores value. A touched field is revalidated at once; an untouched field only
// loses a stale error. A non-empty date is forwarded to the refresh callback.
func (f *Form) UpdateField(field reservation.Field, value string) error {
	if !field.IsInput() {
		return reservation.ErrUnknownField
	}

	f.mu.Lock()
	_ = f.draft.Set(field, value)
	if _, ok := f.touched[field]; ok {
		res, _ := field.Validate(value, f.clock.Now())
		f.publish(field, res)
	} else {
		delete(f.errors, field)
	}
	f.mu.Unlock()

	if field == reservation.FieldDate && value != "" && f.refresh != nil {
		f.refresh(value)
	}
	return nil
}

// HandleBlur marks field touched and shows its error if the current value is invalid.
// A valid value leaves the shown errors untouched.
func (f *Form) HandleBlur(field reservation.Field) (reservation.FieldResult, error) {
	if !field.IsInput() {
		return reservation.FieldResult{}, reservation.ErrUnknownField
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.touched[field] = struct{}{}
	value, _ := f.draft.Get(field)
	res, _ := field.Validate(value, f.clock.Now())
	if !res.IsValid {
		f.errors[field] = res.Message
	}
	return res, nil
}

// ValidateForm replaces every shown error with the result of validating the whole draft
// and reports whether the form may be submitted.
func (f *Form) ValidateForm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validate()
}

// Start runs the submit gate. When the draft is ready it hands a snapshot to the submitter
// in the background and returns at once; otherwise the returned handle is already resolved
// with OutcomeInvalid and the submitter is never called.
func (f *Form) Start(ctx context.Context) *Submission {
	f.mu.Lock()

	for _, field := range reservation.Fields() {
		f.touched[field] = struct{}{}
	}
	draft := f.draft
	if !f.validate() {
		f.mu.Unlock()
		return resolved(draft, OutcomeInvalid, errs.ErrFormInvalid)
	}

	if f.cancel != nil {
		f.cancel()
	}
	subCtx, cancel := context.WithCancel(ctx)
	f.attempt++
	attempt := f.attempt
	f.cancel = cancel
	f.status = StatusSubmitting
	f.mu.Unlock()

	sub := newSubmission(draft, cancel)
	go f.run(subCtx, attempt, sub)
	return sub
}

// Submit is Start followed by waiting for the outcome.
func (f *Form) Submit(ctx context.Context) Outcome {
	outcome, _ := f.Start(ctx).Wait(ctx)
	return outcome
}

// ResetForm clears the form and abandons any submission in flight. It is safe in every state.
func (f *Form) ResetForm() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.attempt++
	f.clear()
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	touched := make([]reservation.Field, 0, len(f.touched))
	for _, field := range reservation.Fields() {
		if _, ok := f.touched[field]; ok {
			touched = append(touched, field)
		}
	}
	return State{
		Draft:   f.draft,
		Errors:  maps.Clone(f.errors),
		Touched: touched,
		Status:  f.status,
	}
}

func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status == StatusSubmitting
}

func (f *Form) run(ctx context.Context, attempt uint64, sub *Submission) {
	draft := sub.Draft()
	accepted, err := f.call(ctx, &draft)

	f.mu.Lock()
	if attempt != f.attempt {
		f.mu.Unlock()
		sub.resolve(OutcomeDiscarded, context.Canceled)
		return
	}

	f.cancel = nil
	f.status = StatusIdle

	// An accepted booking stands even if ctx ended after the submitter returned.
	if err == nil && accepted {
		f.clear()
		f.mu.Unlock()
		sub.cancel()
		sub.resolve(OutcomeConfirmed, nil)
		return
	}

	if ctx.Err() != nil {
		f.mu.Unlock()
		sub.resolve(OutcomeDiscarded, ctx.Err())
		return
	}
	sub.cancel()

	reason := errs.Mark(errs.New("reservation was not accepted"), errs.ErrSubmissionRejected)
	if err != nil {
		reason = errs.Mark(errs.Wrap(err, "submit reservation"), errs.ErrSubmissionFault)
	}
	f.errors[reservation.FieldSubmit] = reservation.MsgSubmitFailed
	f.mu.Unlock()

	f.logger.Warn("reservation submission failed", "date", draft.Date, "time", draft.Time, "error", reason)
	sub.resolve(OutcomeFailed, reason)
}

// call converts a panicking submitter into a fault.
func (f *Form) call(ctx context.Context, draft *reservation.Draft) (accepted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			accepted, err = false, errs.Newf("submitter panicked: %v", r)
		}
	}()
	return f.submitter.Submit(ctx, draft)
}

func (f *Form) validate() bool {
	results := reservation.ValidateDraft(f.draft, f.clock.Now())
	f.errors = results.Errors()
	return results.Ready()
}

func (f *Form) publish(field reservation.Field, res reservation.FieldResult) {
	if res.IsValid {
		delete(f.errors, field)
		return
	}
	f.errors[field] = res.Message
}

func (f *Form) clear() {
	f.draft = reservation.Draft{}
	f.errors = map[reservation.Field]string{}
	f.touched = map[reservation.Field]struct{}{}
	f.status = StatusIdle
}
