package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/stats"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/nremp/dashboard/pkg/workspace"
)

// FinancialDisplay contains the financial summary formatted as currency
// in the language of the request.
type FinancialDisplay struct {
	MonthTotal   string `json:"monthTotal" example:"R$ 1.520,75"`
	DailyAverage string `json:"dailyAverage" example:"R$ 50,69"`
	Paid         string `json:"paid" example:"R$ 9.800,00"`
	Unpaid       string `json:"unpaid" example:"R$ 1.200,50"`
}

func display(c *gin.Context, f stats.Financial) FinancialDisplay {
	tag := httputil.Language(c)
	return FinancialDisplay{
		MonthTotal:   messages.Currency(tag, f.MonthTotal),
		DailyAverage: messages.Currency(tag, f.DailyAverage),
		Paid:         messages.Currency(tag, f.Paid),
		Unpaid:       messages.Currency(tag, f.Unpaid),
	}
}

type DashboardResponse struct {
	Data    stats.Dashboard  `json:"data"`                   // Statistics of the dashboard
	Display FinancialDisplay `json:"display"`                // Formatted financial summary
	Loading bool             `json:"loading" example:"false"` // True until the first snapshot of the notes arrived
}

type HomeResponse struct {
	Data    workspace.Home   `json:"data"`                   // Home summary
	Display FinancialDisplay `json:"display"`                // Formatted financial summary
	Loading bool             `json:"loading" example:"false"` // True until notes and vehicles arrived
}

// RegisterDashboardRoutes registers the routes for the dashboard views.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// RegisterHomeRoutes registers the routes for the home summary.
func (co Controller) RegisterHomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetHome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
// @Router			/v1/home [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the financial statistics: current month, category breakdown, six month trend and the most recent notes
// @Tags			Dashboard
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	dashboard, err := co.Workspace.Dashboard(co.now())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data:    dashboard,
		Display: display(c, dashboard.Financial),
		Loading: !co.Workspace.Loaded(store.CollectionNotes),
	})
}

// @Summary		Get home summary
// @Description	Returns the financial and fleet summary available to every signed in principal
// @Tags			Dashboard
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	HomeResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Router			/v1/home [get]
func (co Controller) GetHome(c *gin.Context) {
	home, err := co.Workspace.Home(co.now())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, HomeResponse{
		Data:    home,
		Display: display(c, home.Financial),
		Loading: !co.Workspace.Loaded(store.CollectionNotes) || !co.Workspace.Loaded(workspace.Vehicles),
	})
}
