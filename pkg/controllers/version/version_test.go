package version_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/controllers/version"
	"github.com/nremp/dashboard/test"
	"github.com/stretchr/testify/assert"
)

func engine(o version.Object) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	version.RegisterRoutes(r.Group("/version"), o)
	return r
}

func TestOptions(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, engine(version.Object{}), http.MethodOptions, "http://example.com/version", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
}

func TestGetVersion(t *testing.T) {
	t.Parallel()

	o := version.Object{Version: "1.4.2", Revision: "9f1c2e7", Modified: true}
	recorder := test.Request(t, engine(o), http.MethodGet, "https://example.com/version", nil)

	var response version.Response
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, version.Response{Data: o}, response)
}

func TestGetVersionOmitsUnknownRevision(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	engine(version.Object{Version: "0.0.0"}).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.JSONEq(t, `{"data":{"version":"0.0.0"}}`, recorder.Body.String())
}

func TestNew(t *testing.T) {
	o := version.New("2.0.0")
	assert.Equal(t, "2.0.0", o.Version)
}
