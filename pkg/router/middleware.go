package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/controllers"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/workspace"
	"github.com/prometheus/client_golang/prometheus"
)

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httputil.ContextURL, url.String())
		c.Next()
	}
}

// TokenVerifier verifies ID tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// PrincipalSource returns the principal the process is signed in as.
type PrincipalSource interface {
	Principal() *auth.Principal
}

// AuthMiddleware only lets requests pass that carry a valid ID token of
// the currently signed in principal.
//
// The dashboard core holds exactly one session. A token issued for a
// principal that has since signed out, or was replaced by another sign in,
// is treated as expired.
func AuthMiddleware(verifier TokenVerifier, principals PrincipalSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			httperrors.Handler(c, workspace.ErrUnauthenticated)
			return
		}

		principal, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			httperrors.Handler(c, err)
			return
		}

		current := principals.Principal()
		if current == nil || current.UID != principal.UID {
			httperrors.Handler(c, &auth.Error{Code: auth.CodeTokenExpired})
			return
		}

		c.Set(controllers.ContextPrincipal, principal)
		c.Next()
	}
}

// ModuleGate reports whether the signed in principal may access a module.
type ModuleGate interface {
	HasModuleAccess(m permissions.Module) bool
}

// RequireModule rejects requests for a module the principal has no access
// to before any handler runs.
func RequireModule(gate ModuleGate, m permissions.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.HasModuleAccess(m) {
			httperrors.Handler(c, fmt.Errorf("%w: %s", workspace.ErrForbidden, m))
			return
		}

		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// RegisterMetrics registers all HTTP metrics with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range metrics {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
