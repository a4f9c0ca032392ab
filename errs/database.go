package errs

import (
	"fmt"
	"net/http"
	"strings"
)

// NewDatabaseError classifies an error returned by the store during
// operation on entity. Duplicate-key violations are mapped to the conflict
// path so that a uniqueness race lost at persist time still surfaces as a
// duplicate failure rather than a generic fault. Absent rows never reach
// this function; the repositories report them as nil results.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case IsDuplicateKey(cause):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// IsDuplicateKey reports whether err is a unique-constraint violation
// surfaced by the driver. Postgres reports SQLSTATE 23505.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if IsAlreadyExists(err) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "SQLSTATE 23505")
}
