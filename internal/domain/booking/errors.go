package booking

import "errors"

// ErrSlotTaken reports that the requested (doctor, date, time) slot is
// already booked. The store's unique constraint is the arbiter; this error
// is the mapped form of its violation.
var ErrSlotTaken = errors.New("selected slot is already booked")

// ValidationError reports request input the workflow rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IsValidation reports whether err is a booking ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a booking NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
