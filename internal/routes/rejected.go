package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerRejectedRoutes(g *echo.Group, ctrl *controllers.RejectedController) {
	g.GET("/rejected", ctrl.GetRejected)
	g.GET("/rejected/:id", ctrl.FindRejected)
	g.DELETE("/rejected/:id", ctrl.DeleteRejected)

	g.POST("/rejected/:id/restore-need", ctrl.RestoreToNeed)
	g.POST("/rejected/:id/restore-issuance", ctrl.RestoreToIssuance)
}
