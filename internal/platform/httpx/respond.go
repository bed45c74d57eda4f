package httpx

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

type errorDTO struct {
	Error struct {
		Code    apierr.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// Error writes the JSON error body for a service error.
func Error(c *gin.Context, err error) {
	var api *apierr.Error
	if !errors.As(err, &api) {
		api = apierr.Internal(err.Error())
	}
	var body errorDTO
	body.Error.Code = api.Code
	body.Error.Message = api.Message
	c.JSON(apierr.ToHTTPStatus(err), body)
}

// BadRequest is used when request binding fails before a service runs.
func BadRequest(c *gin.Context, msg string) {
	Error(c, apierr.Invalid(msg))
}
