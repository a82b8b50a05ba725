package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
)

const internalMessage = "internal error"

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes the envelope and stops the handler chain.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// RespondAPIError maps err onto an envelope. Store failures and errors
// without an API classification become a generic 500; the cause stays on the
// gin context for the request logger.
func RespondAPIError(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	_ = c.Error(err)
	ae, ok := apierr.As(err)
	if !ok {
		RespondError(c, http.StatusInternalServerError, "internal", errors.New(internalMessage))
		return
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if ae.Kind == apierr.KindUpstream || status >= http.StatusInternalServerError {
		RespondError(c, status, ae.Code, errors.New(internalMessage))
		return
	}
	RespondError(c, status, ae.Code, ae)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
