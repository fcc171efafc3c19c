package webapi

import (
	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/pkg/wserv"
)

type WSController struct {
	hub *wserv.Hub
}

func NewWSController(hub *wserv.Hub) *WSController {
	return &WSController{hub: hub}
}

func (c *WSController) ServeActivities(ctx echo.Context) error {
	c.hub.ServeWS(ctx.Response(), ctx.Request())
	return nil
}
