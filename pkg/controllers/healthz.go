package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/rs/zerolog/log"
)

// healthzTimeout bounds the store ping so that a locked database file
// does not hang the probe of the orchestrator.
const healthzTimeout = 2 * time.Second

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz reports whether the document store can be reached
//
//	@Summary		Get health
//	@Description	Returns no content if the document store answers, otherwise the reason it does not
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		503	{object}	httperrors.HTTPError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	if err := co.pingStore(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("Health check")
		httperrors.Handler(c, httperrors.Error{Err: err, Status: http.StatusServiceUnavailable})
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) pingStore(ctx context.Context) error {
	sqlDB, err := co.DB.DB()
	if err != nil {
		return fmt.Errorf("document store: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, healthzTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("document store unreachable: %w", err)
	}
	return nil
}
