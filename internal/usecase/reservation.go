package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"table-booking/internal/domain/availability"
	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/metrics"
	"table-booking/internal/usecase/bookingform"
	"table-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation.go -package=usecasemock

var (
	ErrSessionNotFound      = errors.New("booking session not found")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrSubmissionDiscarded  = errors.New("submission discarded")
	ErrInvalidDate          = errors.New("invalid date")

	// Error markers for categorization
	ErrFormInvalid      = errs.ErrFormInvalid
	ErrSubmissionFailed = errors.New("submission failed")
)

// SessionStore holds open booking sessions.
type SessionStore interface {
	Put(s *Session) uuid.UUID
	Get(id uuid.UUID) (*Session, error)
	Delete(id uuid.UUID) (*Session, error)
	Len() int
}

type ReservationUseCase interface {
	Options(ctx context.Context) *readmodel.OptionsRM
	AvailableTimes(ctx context.Context, date string) (*readmodel.AvailabilityRM, error)
	StartSession(ctx context.Context) (*readmodel.SessionRM, error)
	GetSession(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
	UpdateField(ctx context.Context, id uuid.UUID, field reservation.Field, value string) (*readmodel.SessionRM, error)
	BlurField(ctx context.Context, id uuid.UUID, field reservation.Field) (*readmodel.SessionRM, error)
	Submit(ctx context.Context, id uuid.UUID) (*readmodel.SubmitResultRM, error)
	ResetSession(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
	CloseSession(ctx context.Context, id uuid.UUID) error
}

// Session pairs one form with the slot board its date changes refresh.
type Session struct {
	Form     *bookingform.Form
	Board    *availability.Board
	inFlight atomic.Bool
}

// Close abandons the session's form, cancelling a submission in flight.
func (s *Session) Close() {
	s.Form.ResetForm()
}

type reservationUseCaseImpl struct {
	sessions  SessionStore
	generator *availability.Generator
	submitter bookingform.Submitter
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewReservationUseCase(
	sessions SessionStore,
	generator *availability.Generator,
	submitter bookingform.Submitter,
	clock clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		sessions:  sessions,
		generator: generator,
		submitter: submitter,
		clock:     clock,
		metrics:   m,
		logger:    logger,
	}
}

func (r *reservationUseCaseImpl) Options(_ context.Context) *readmodel.OptionsRM {
	occasions := reservation.Occasions()
	out := make([]readmodel.OccasionRM, len(occasions))
	for i, o := range occasions {
		out[i] = readmodel.OccasionRM{Value: string(o), Label: o.Label()}
	}
	return &readmodel.OptionsRM{
		Occasions:       out,
		MinGuests:       reservation.MinGuests,
		MaxGuests:       reservation.MaxGuests,
		TimePlaceholder: reservation.TimePlaceholder,
		DefaultTimes:    availability.Fallback(),
	}
}

func (r *reservationUseCaseImpl) AvailableTimes(_ context.Context, date string) (*readmodel.AvailabilityRM, error) {
	if date == "" {
		date = r.clock.Now().Format(reservation.DateLayout)
	}
	if _, err := reservation.ParseDate(date, r.clock.Now().Location()); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse availability date"), ErrInvalidDate)
	}

	times := r.generator.ComputeString(date)
	fallback := len(times) == 0
	times = times.OrFallback()

	source := "generator"
	if fallback {
		source = "fallback"
	}
	r.metrics.SlotsOffered(source, len(times))

	return &readmodel.AvailabilityRM{Date: date, Times: times, Fallback: fallback}, nil
}

func (r *reservationUseCaseImpl) StartSession(_ context.Context) (*readmodel.SessionRM, error) {
	board := availability.NewBoard(r.generator, r.clock)
	form := bookingform.New(r.submitter, func(date string) { board.Dispatch(date) },
		bookingform.WithClock(r.clock),
		bookingform.WithLogger(r.logger),
	)
	sess := &Session{Form: form, Board: board}

	id := r.sessions.Put(sess)
	r.metrics.SessionOpened()
	r.logger.Info("booking session started", "session_id", id)

	return toSessionRM(id, sess), nil
}

func (r *reservationUseCaseImpl) GetSession(_ context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	sess, err := r.session(id)
	if err != nil {
		return nil, err
	}
	return toSessionRM(id, sess), nil
}

func (r *reservationUseCaseImpl) UpdateField(_ context.Context, id uuid.UUID, field reservation.Field, value string) (*readmodel.SessionRM, error) {
	sess, err := r.session(id)
	if err != nil {
		return nil, err
	}
	if err := sess.Form.UpdateField(field, value); err != nil {
		return nil, err
	}

	_, shown := sess.Form.State().Errors[field]
	r.metrics.FieldEvent(field.String(), "update", !shown)

	return toSessionRM(id, sess), nil
}

func (r *reservationUseCaseImpl) BlurField(_ context.Context, id uuid.UUID, field reservation.Field) (*readmodel.SessionRM, error) {
	sess, err := r.session(id)
	if err != nil {
		return nil, err
	}
	res, err := sess.Form.HandleBlur(field)
	if err != nil {
		return nil, err
	}
	r.metrics.FieldEvent(field.String(), "blur", res.IsValid)

	return toSessionRM(id, sess), nil
}

// Submit runs one attempt and waits for it. Only one attempt per session may be in flight;
// a concurrent call fails with ErrSubmissionInProgress and leaves the running one alone.
func (r *reservationUseCaseImpl) Submit(ctx context.Context, id uuid.UUID) (*readmodel.SubmitResultRM, error) {
	sess, err := r.session(id)
	if err != nil {
		return nil, err
	}
	if !sess.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer sess.inFlight.Store(false)

	sub := sess.Form.Start(ctx)
	outcome, waitErr := sub.Wait(ctx)
	r.metrics.SubmitOutcome(outcome.String())

	result := &readmodel.SubmitResultRM{
		Outcome: outcome.String(),
		Session: toSessionRM(id, sess),
	}

	switch outcome {
	case bookingform.OutcomeConfirmed:
		summary := reservation.Summarize(sub.Draft())
		result.Confirmation = &readmodel.ConfirmationRM{
			Date:     summary.Date,
			Time:     summary.Time,
			Guests:   summary.Guests,
			Occasion: summary.Occasion,
		}
		r.logger.Info("reservation confirmed", "session_id", id, "date", sub.Draft().Date, "time", sub.Draft().Time)
		return result, nil
	case bookingform.OutcomeInvalid:
		return result, ErrFormInvalid
	case bookingform.OutcomeFailed:
		return result, errs.Mark(sub.Err(), ErrSubmissionFailed)
	default:
		if waitErr == nil {
			waitErr = sub.Err()
		}
		return result, errs.Mark(errs.Wrap(waitErr, "submission discarded"), ErrSubmissionDiscarded)
	}
}

func (r *reservationUseCaseImpl) ResetSession(_ context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	sess, err := r.session(id)
	if err != nil {
		return nil, err
	}
	sess.Form.ResetForm()
	sess.Board.Dispatch("")

	return toSessionRM(id, sess), nil
}

func (r *reservationUseCaseImpl) CloseSession(_ context.Context, id uuid.UUID) error {
	sess, err := r.sessions.Delete(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSessionNotFound
		}
		return errs.Wrap(err, "failed to delete session")
	}
	sess.Close()
	r.metrics.SessionClosed()
	r.logger.Info("booking session closed", "session_id", id)
	return nil
}

func (r *reservationUseCaseImpl) session(id uuid.UUID) (*Session, error) {
	sess, err := r.sessions.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindExpired) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to load session")
	}
	return sess, nil
}

func toSessionRM(id uuid.UUID, sess *Session) *readmodel.SessionRM {
	state := sess.Form.State()

	msgs := make(map[string]string, len(state.Errors))
	for f, msg := range state.Errors {
		msgs[f.String()] = msg
	}
	touched := make([]string, len(state.Touched))
	for i, f := range state.Touched {
		touched[i] = f.String()
	}

	return &readmodel.SessionRM{
		ID:             id,
		Date:           state.Draft.Date,
		Time:           state.Draft.Time,
		Guests:         state.Draft.Guests,
		Occasion:       state.Draft.Occasion,
		Errors:         msgs,
		Touched:        touched,
		Status:         state.Status.String(),
		IsSubmitting:   state.IsSubmitting(),
		AvailableTimes: sess.Board.Times(),
	}
}
