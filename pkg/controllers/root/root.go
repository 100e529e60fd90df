package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httputil"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Session   string `json:"session" example:"https://example.com/api/v1/session"`     // Sign in, sign out and the current profile
	Home      string `json:"home" example:"https://example.com/api/v1/home"`           // Home summary
	Dashboard string `json:"dashboard" example:"https://example.com/api/v1/dashboard"` // Financial statistics
	Notes     string `json:"notes" example:"https://example.com/api/v1/notes"`         // Notes and CSV import
	Fleet     string `json:"fleet" example:"https://example.com/api/v1/fleet"`         // Vehicles with their cost
	Users     string `json:"users" example:"https://example.com/api/v1/users"`         // User administration
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

func RegisterV1Routes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(httputil.ContextURL) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Session:   url + "/session",
			Home:      url + "/home",
			Dashboard: url + "/dashboard",
			Notes:     url + "/notes",
			Fleet:     url + "/fleet",
			Users:     url + "/users",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
