package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerDirectoryRoutes(g *echo.Group, ctrl *controllers.DirectoryController) {
	g.GET("/directories/:kind", ctrl.List)
	g.GET("/directories/:kind/:id", ctrl.Find)
	g.POST("/directories/:kind", ctrl.Create)
	g.PUT("/directories/:kind/:id", ctrl.Update)
	g.DELETE("/directories/:kind/:id", ctrl.Delete)
}
