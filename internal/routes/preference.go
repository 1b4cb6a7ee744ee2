package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerPreferenceRoutes(g *echo.Group, ctrl *controllers.PreferenceController) {
	g.GET("/preferences", ctrl.GetPreferences)
	g.PUT("/preferences/period", ctrl.SetPeriod)
	g.PUT("/preferences/location", ctrl.SetLocation)
	g.GET("/preferences/columns/:collection", ctrl.GetColumns)
	g.PUT("/preferences/columns/:collection", ctrl.SetColumns)
	g.POST("/preferences/columns/:collection/toggle", ctrl.ToggleColumn)
}
