package webapi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/obj"
	"github.com/mergington/activities/pkg/stor"
)

// Registrar is the write side used by the controller.
type Registrar interface {
	SignUp(activityName, email string) (*actmodel.Confirmation, error)
	Unregister(activityName, email string) (*actmodel.Confirmation, error)
}

// RejectionRecorder is told about every failed write.
type RejectionRecorder interface {
	Rejected(operation string, err error)
}

type ActivitiesController struct {
	activityStor stor.ActivityStor
	registrar    Registrar
	rejections   RejectionRecorder
}

func NewActivitiesController(activityStor stor.ActivityStor, registrar Registrar, rejections RejectionRecorder) *ActivitiesController {
	return &ActivitiesController{
		activityStor: activityStor,
		registrar:    registrar,
		rejections:   rejections,
	}
}

func (c *ActivitiesController) ListActivities(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.activityStor.ListActivities())
}

func (c *ActivitiesController) SignUp(ctx echo.Context) error {
	activityName := activityNameParam(ctx)
	email := ctx.QueryParam("email")

	confirmation, err := c.registrar.SignUp(activityName, email)
	if err != nil {
		c.rejected("signup", err)
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", confirmation.Email, confirmation.ActivityName),
	})
}

func (c *ActivitiesController) Unregister(ctx echo.Context) error {
	activityName := activityNameParam(ctx)
	email := ctx.QueryParam("email")

	confirmation, err := c.registrar.Unregister(activityName, email)
	if err != nil {
		c.rejected("unregister", err)
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", confirmation.Email, confirmation.ActivityName),
	})
}

func (c *ActivitiesController) rejected(operation string, err error) {
	if !obj.IsNil(c.rejections) {
		c.rejections.Rejected(operation, err)
	}
}

// activityNameParam returns the :name segment decoded exactly once. echo
// routes on URL.RawPath when it is set, leaving params escaped; otherwise the
// param is already decoded and is used as is.
func activityNameParam(ctx echo.Context) string {
	raw := ctx.Param("name")
	if ctx.Request().URL.RawPath == "" {
		return raw
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return name
}
