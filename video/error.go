package video

import "fmt"

// VideoError carries the failing operation alongside the host error.
type VideoError struct {
	Op      string
	Details string
	Err     error
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Op, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

func Errorf(op string, err error, format string, v ...interface{}) *VideoError {
	return &VideoError{Op: op, Details: fmt.Sprintf(format, v...), Err: err}
}
