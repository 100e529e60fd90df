package router

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/nremp/dashboard/api"
	"github.com/nremp/dashboard/pkg/controllers"
	"github.com/nremp/dashboard/pkg/controllers/root"
	"github.com/nremp/dashboard/pkg/controllers/version"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/text/language"
)

// Release of the binary, overridden by "make build" through -ldflags.
var appVersion = "0.0.0"

// Options configures the router.
type Options struct {
	// Origins allowed by CORS. CORS is not enabled when empty.
	AllowOrigins []string

	// EnablePprof registers the pprof handlers below /debug/pprof
	EnablePprof bool

	// Language for requests that do not ask for a supported one
	Language language.Tag

	// Registry exposed on /metrics. The request metrics are registered
	// with it. No metrics are collected if nil.
	Registry *prometheus.Registry
}

func Config(url *url.URL, opts Options) (*gin.Engine, error) {
	if opts.Language == language.Und {
		opts.Language = messages.Default
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(httputil.LanguageMiddleware(opts.Language))
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if opts.Registry != nil {
		if err := RegisterMetrics(opts.Registry); err != nil {
			return nil, err
		}
		r.Use(MetricsMiddleware())
	}

	if len(opts.AllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", opts.AllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept-Language"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", appVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Dashboard"
	docs.SwaggerInfo.Version = appVersion
	docs.SwaggerInfo.Description = "Backend of the business dashboard: financial notes, fleet costs and user administration."

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, opts Options) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), version.New(appVersion))
	co.RegisterHealthzRoutes(group.Group("/healthz"))

	if opts.Registry != nil {
		group.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	// pprof performance profiles
	if opts.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	v1 := group.Group("/v1")
	root.RegisterV1Routes(v1.Group(""))

	co.RegisterSessionRoutes(v1.Group("/session"))

	authenticated := v1.Group("", AuthMiddleware(co.Auth, co.Session))
	{
		co.RegisterAuthenticatedSessionRoutes(authenticated.Group("/session"))
		co.RegisterHomeRoutes(authenticated.Group("/home"))
		co.RegisterDashboardRoutes(authenticated.Group("/dashboard", RequireModule(co.Session, permissions.ModuleDashboard)))
		co.RegisterNoteRoutes(authenticated.Group("/notes", RequireModule(co.Session, permissions.ModuleManagement)))
		co.RegisterFleetRoutes(authenticated.Group("/fleet", RequireModule(co.Session, permissions.ModuleFleet)))
		co.RegisterUserRoutes(authenticated.Group("/users", RequireModule(co.Session, permissions.ModuleUsers)))
	}
}
