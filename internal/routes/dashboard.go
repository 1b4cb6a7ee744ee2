package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerDashboardRoutes(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard", ctrl.GetCounters)
}
