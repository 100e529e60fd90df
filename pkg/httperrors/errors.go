package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/rs/zerolog/log"
)

// New writes an error response with a message on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	var e Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}

	switch messages.KeyOf(err) {
	case messages.InvalidCredential, messages.SessionExpired, messages.Unauthenticated:
		return http.StatusUnauthorized
	case messages.Forbidden, messages.SelfRoleChange, messages.SelfRemoval:
		return http.StatusForbidden
	case messages.NotFound:
		return http.StatusNotFound
	case messages.EmailInUse:
		return http.StatusConflict
	case messages.InvalidEmail, messages.WeakPassword, messages.CredentialsRequired, messages.InvalidNote, messages.InvalidRole, messages.NoFile:
		return http.StatusBadRequest
	case messages.ImportNoValidRows:
		return http.StatusUnprocessableEntity
	}

	if errors.Is(err, httputil.ErrInvalidBody) || errors.Is(err, httputil.ErrRequestBodyEmpty) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// dbError classifies errors of the SQLite driver.
func dbError(err error) (*sqlite.Error, bool) {
	var e *sqlite.Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Handler writes the response for an error. The message is localized
// with the language of the request. Errors that have no friendly message
// are logged with the request id.
func Handler(c *gin.Context, err error) {
	tag := httputil.Language(c)
	status := Status(err)

	// Errors with an explicit status carry their own message
	var e Error
	if errors.As(err, &e) && e.Status != 0 {
		New(c, e.Status, e.Err.Error())
		return
	}

	if status == http.StatusBadRequest && (errors.Is(err, httputil.ErrInvalidBody) || errors.Is(err, httputil.ErrRequestBodyEmpty)) {
		New(c, status, err.Error())
		return
	}

	if status != http.StatusInternalServerError {
		response := HTTPError{Error: messages.Error(tag, err)}

		var violations notes.Violations
		if errors.As(err, &violations) {
			response.Fields = make(map[string]string, len(violations))
			for field, code := range violations {
				response.Fields[field] = messages.Field(tag, code)
			}
		}

		c.AbortWithStatusJSON(status, response)
		return
	}

	event := log.Error().Str("request-id", requestid.Get(c))
	if e, ok := dbError(err); ok {
		event = event.Int("sqlite-code", e.Code())
	}
	if code := auth.CodeOf(err); code != "" {
		event = event.Str("auth-code", string(code))
	}
	event.Msgf("%T: %v", err, err.Error())

	New(c, status, "%s (request id: %s)", messages.Error(tag, err), requestid.Get(c))
}
