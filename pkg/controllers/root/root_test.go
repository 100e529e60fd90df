package root_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/controllers/root"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/test"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/", func(_ *gin.Context) {
		root.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	t.Parallel()
	recorder := httptest.NewRecorder()
	_, r := gin.CreateTestContext(recorder)

	r.Use(func(c *gin.Context) {
		c.Set(httputil.ContextURL, "https://example.com/api")
	})
	root.RegisterRoutes(r.Group("/"))

	expectedResponse := root.Response{
		Links: root.Links{
			Docs:    "https://example.com/api/docs/index.html",
			Healthz: "https://example.com/api/healthz",
			Version: "https://example.com/api/version",
			Metrics: "https://example.com/api/metrics",
			V1:      "https://example.com/api/v1",
		},
	}

	var response root.Response

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	r.ServeHTTP(recorder, req)

	test.DecodeResponse(t, recorder, &response)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, expectedResponse, response)
}

func TestGetV1(t *testing.T) {
	t.Parallel()
	recorder := httptest.NewRecorder()
	c, r := gin.CreateTestContext(recorder)

	r.GET("/v1", func(_ *gin.Context) {
		root.GetV1(c)
	})

	// Test contexts cannot be injected any middleware, therefore
	// this only tests the path, not the host
	var response root.V1Response

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/v1", nil)
	r.ServeHTTP(recorder, c.Request)

	test.DecodeResponse(t, recorder, &response)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "/v1/notes", response.Links.Notes)
	assert.Equal(t, "/v1/users", response.Links.Users)
	assert.Equal(t, "/v1/session", response.Links.Session)
}
