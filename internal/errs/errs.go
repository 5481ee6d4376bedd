// internal/errs/errs.go
// Package errs defines the failure kinds the run distinguishes. Validation
// and I/O failures are fatal; external-tool failures stay scoped to their
// job.
package errs

import "golang.org/x/xerrors"

var (
	ErrValidation   = xerrors.New("validation error")
	ErrIO           = xerrors.New("io error")
	ErrExternalTool = xerrors.New("external tool error")
)

// Validationf wraps a formatted message with the validation kind.
func Validationf(format string, a ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(a, ErrValidation)...)
}

// IO marks err as an I/O failure of operation op.
func IO(op string, err error) error {
	return xerrors.Errorf("%s: %v: %w", op, err, ErrIO)
}

// Tool marks err as an external-tool failure of job jobID.
func Tool(jobID string, err error) error {
	return xerrors.Errorf("job %s: %v: %w", jobID, err, ErrExternalTool)
}

// ExitCode maps an error kind to the process exit code: 0 for nil,
// 2 for validation, 3 for I/O, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case xerrors.Is(err, ErrValidation):
		return 2
	case xerrors.Is(err, ErrIO):
		return 3
	default:
		return 1
	}
}
