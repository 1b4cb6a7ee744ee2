package routes

import (
	"equipment-admin/internal/controllers"

	"github.com/labstack/echo/v4"
)

func registerNeedRoutes(g *echo.Group, ctrl *controllers.NeedController) {
	g.GET("/needs", ctrl.GetNeeds)
	g.GET("/needs/:id", ctrl.FindNeed)
	g.POST("/needs", ctrl.CreateNeed)
	g.PUT("/needs/:id", ctrl.UpdateNeed)
	g.DELETE("/needs/:id", ctrl.DeleteNeed)

	// Переходи життєвого циклу — явні дії, не поле статусу.
	g.POST("/needs/:id/approve", ctrl.ApproveNeed)
	g.POST("/needs/:id/reject", ctrl.RejectNeed)
}
