// Package version serves the version of the running dashboard backend.
package version

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httputil"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version  string `json:"version" example:"1.1.0"`                                     // Release of the dashboard backend
	Revision string `json:"revision,omitempty" example:"9f1c2e7a4b3d5e6f7a8b9c0d1e2f3a4b5c6d7e8f"` // VCS revision the binary was built from, if known
	Modified bool   `json:"modified,omitempty" example:"false"`                           // True if the working tree had local changes at build time
}

// New returns the version information for a release. The VCS revision is
// read from the build information of the binary.
func New(release string) Object {
	o := Object{Version: release}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return o
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			o.Revision = s.Value
		case "vcs.modified":
			o.Modified = s.Value == "true"
		}
	}
	return o
}

func RegisterRoutes(r *gin.RouterGroup, o Object) {
	r.GET("", Get(o))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns a handler responding with o.
//
// @Summary		API version
// @Description	Returns the release and, if known, the VCS revision of the API
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(o Object) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: o})
	}
}
