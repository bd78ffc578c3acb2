package infra

import (
	"errors"
	"log/slog"

	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type StoreErrorKind string

// Kinds callers branch on. Anything else is an infrastructure fault.
const (
	KindNotFound StoreErrorKind = "NOT_FOUND"
	KindExpired  StoreErrorKind = "EXPIRED"
)

// StoreError reports why a lookup by ID failed.
type StoreError struct {
	Kind StoreErrorKind
	ID   uuid.UUID
	msg  string
	err  error
}

func (e StoreError) Error() string {
	s := string(e.Kind) + " " + e.ID.String() + ": " + e.msg
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e StoreError) Unwrap() error {
	return e.err
}

func NewStoreErr(logger *slog.Logger, kind StoreErrorKind, id uuid.UUID, msg string) error {
	return WrapStoreErr(logger, kind, id, msg, nil)
}

func WrapStoreErr(logger *slog.Logger, kind StoreErrorKind, id uuid.UUID, msg string, err error) error {
	logger.Debug("store lookup failed", "kind", string(kind), "id", id, "reason", msg)

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: kind, ID: id, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
