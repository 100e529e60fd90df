package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/stats"
	"github.com/nremp/dashboard/pkg/workspace"
)

type FleetResponse struct {
	Data    stats.FleetSummary `json:"data"`                                         // Fleet summary with the cost per vehicle
	Error   string             `json:"error,omitempty" example:"Something went wrong"` // Set when the fleet inventory could not be read
	Loading bool               `json:"loading" example:"false"`                       // True until the fleet inventory arrived
}

// RegisterFleetRoutes registers the routes for the fleet view.
func (co Controller) RegisterFleetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsFleet)
	r.GET("", co.GetFleet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fleet
// @Success		204
// @Router			/v1/fleet [options]
func (co Controller) OptionsFleet(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get fleet
// @Description	Returns the vehicles with their accumulated cost. If the fleet inventory could not be read, the list is empty and error is set.
// @Tags			Fleet
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	FleetResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Router			/v1/fleet [get]
func (co Controller) GetFleet(c *gin.Context) {
	summary, err := co.Workspace.Fleet()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	response := FleetResponse{
		Data:    summary,
		Loading: !co.Workspace.Loaded(workspace.Vehicles),
	}
	if err := co.Workspace.FleetError(); err != nil {
		response.Error = messages.Error(httputil.Language(c), err)
	}

	c.JSON(http.StatusOK, response)
}
