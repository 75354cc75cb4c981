package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/restaurants-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// OperationFailure is the body of a 500 returned by a write endpoint.
type OperationFailure struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	RespondErrorDetails(c, status, code, err, nil)
}

func RespondErrorDetails(c *gin.Context, status int, code string, err error, details any) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
			Details: details,
		},
	})
}

// RespondAPIError writes err using the status and code apierr.FromError picks.
func RespondAPIError(c *gin.Context, err error) {
	apiErr := apierr.FromError(err)
	if apiErr == nil {
		apiErr = apierr.New(http.StatusInternalServerError, "internal", nil)
	}
	RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
}

// RespondOperationFailed writes a 500 with a human summary and the cause text.
func RespondOperationFailed(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, OperationFailure{Message: message, Details: details})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
