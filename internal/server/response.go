package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradebook/journal"
)

// Response codes carried in the envelope. 0 means success.
const (
	CodeSuccess   = 0
	CodeValidate  = 10001
	CodeNotFound  = 10004
	CodeMalformed = 10009
	CodeUnknown   = 10500
)

// ApiResponse wraps every reply: a code, a human readable message and the
// payload.
type ApiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON sends data on success, or the code and message decoded from err.
func JSON(c *gin.Context, err error, data any) {
	status, code, message := decodeErr(err)
	c.JSON(status, ApiResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func decodeErr(err error) (status, code int, message string) {
	switch {
	case err == nil:
		return http.StatusOK, CodeSuccess, "ok"
	case errors.Is(err, journal.ErrInvalidTrade), errors.Is(err, errBadRequest):
		return http.StatusBadRequest, CodeValidate, err.Error()
	case errors.Is(err, journal.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, journal.ErrMalformedStore):
		return http.StatusConflict, CodeMalformed, err.Error()
	default:
		return http.StatusInternalServerError, CodeUnknown, err.Error()
	}
}

var errBadRequest = errors.New("bad request")
