package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError maps the four outcome classes onto response codes:
// validation 400, not-found 404, conflict 409, everything else 500.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    ae.Code,
		},
	})
}
