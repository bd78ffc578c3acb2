package errs

import "errors"

// Markers used to categorize submission failures across layers
var (
	ErrFormInvalid        = errors.New("booking form invalid")
	ErrSubmissionRejected = errors.New("reservation rejected by backend")
	ErrSubmissionFault    = errors.New("reservation backend fault")
)
