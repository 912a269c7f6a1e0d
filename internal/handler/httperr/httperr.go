// Package httperr renders the booking error envelope
// {"error":{"message":...},"detail":...}. Detail holds the machine-readable
// part of a failure (conflict reason, failing fields, hold state) and is
// omitted when there is none.
package httperr

import (
	"net/http"

	"field-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Message string `json:"message"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// Internal is the envelope for failures the client cannot act on.
func Internal() Response {
	return NewResponse(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError writes the envelope and keeps err on the context so the
// request logger sees the cause behind a public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Unauthorized rejects a request that reached a handler without an actor.
func Unauthorized(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
}
