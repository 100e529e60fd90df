package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// ContextLanguage is the gin context key of the response language.
const ContextLanguage = "language"

// LanguageParam is the query parameter overriding the Accept-Language header.
const LanguageParam = "lang"

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// LanguageMiddleware selects the response language from the lang query
// parameter or the Accept-Language header.
func LanguageMiddleware(fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := fallback

		if lang, ok := messages.Parse(c.Query(LanguageParam)); ok {
			tag = lang
		} else if accept := c.GetHeader("Accept-Language"); accept != "" {
			tag = messages.Match(accept)
		}

		c.Set(ContextLanguage, tag)
		c.Next()
	}
}

// Language returns the response language of the request.
func Language(c *gin.Context) language.Tag {
	if v, ok := c.Get(ContextLanguage); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return messages.Match(c.GetHeader("Accept-Language"))
}

// ContextURL is the gin context key of the external base URL of the API.
const ContextURL = "baseURL"
