package cmd

import (
	"net/http"

	"github.com/hashicorp/go-uuid"
	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/metrics"
	"github.com/mergington/activities/pkg/registration"
	"github.com/mergington/activities/pkg/stor"
	"github.com/mergington/activities/pkg/webapi"
	"github.com/mergington/activities/pkg/wserv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteOpts struct {
	activityStor        stor.ActivityStor
	registrationService *registration.Service
	recorder            *metrics.Recorder
	gatherer            prometheus.Gatherer
	hub                 *wserv.Hub
	staticDir           string
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	e.Static("/static", opts.staticDir)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	activitiesController := webapi.NewActivitiesController(opts.activityStor, opts.registrationService, opts.recorder)
	e.GET("/activities", activitiesController.ListActivities)
	e.POST("/activities/:name/signup", activitiesController.SignUp)
	e.POST("/activities/:name/unregister", activitiesController.Unregister)
	e.DELETE("/activities/:name/unregister", activitiesController.Unregister)

	if opts.hub != nil {
		wsController := webapi.NewWSController(opts.hub)
		e.GET("/ws/activities", wsController.ServeActivities)
	}

	if opts.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.gatherer, promhttp.HandlerOpts{})))
	}

	g := e.Group("/admin")
	logController := webapi.NewLogController(clog.Default())
	g.GET("/logging", logController.ShowCurrentLogging)
	g.PUT("/logging", logController.SetLogging)
}

func newRequestID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return ""
	}

	return id
}
