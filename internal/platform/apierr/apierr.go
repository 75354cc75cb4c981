package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/restaurants-backend/internal/domain/aggregates"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError translates err into an HTTP-facing error. Validation failures are
// 400, missing restaurants are 404, and every other failure is 500.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	code := aggregates.CodeOf(err)
	switch code {
	case aggregates.CodeValidation:
		return New(http.StatusBadRequest, string(code), err)
	case aggregates.CodeNotFound:
		return New(http.StatusNotFound, string(code), err)
	case "":
		return New(http.StatusInternalServerError, string(aggregates.CodeInternal), err)
	default:
		return New(http.StatusInternalServerError, string(code), err)
	}
}
