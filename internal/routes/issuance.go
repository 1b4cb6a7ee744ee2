package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerIssuanceRoutes(g *echo.Group, ctrl *controllers.IssuanceController) {
	g.GET("/issuance", ctrl.GetIssuance)
	g.GET("/issuance/:id", ctrl.FindIssuance)
	g.POST("/issuance", ctrl.CreateIssuance)
	g.PUT("/issuance/:id", ctrl.UpdateIssuance)
	g.DELETE("/issuance/:id", ctrl.DeleteIssuance)

	g.POST("/issuance/:id/issue", ctrl.IssueIssuance)
	g.POST("/issuance/:id/status", ctrl.SetStatus)
	g.POST("/issuance/:id/return", ctrl.ReturnIssuance)
}
