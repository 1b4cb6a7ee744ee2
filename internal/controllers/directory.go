package controllers

import (
	"net/http"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/services"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
	logger           *zap.Logger
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface, logger *zap.Logger) *DirectoryController {
	return &DirectoryController{directoryService: directoryService, logger: logger}
}

// parseKind розбирає параметр :kind маршруту в один із п'яти довідників.
func parseKind(ctx echo.Context) (constants.DirectoryKind, error) {
	kind := constants.DirectoryKind(ctx.Param("kind"))
	for _, k := range constants.DirectoryKinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", apperrors.NewHttpError(
		http.StatusBadRequest,
		"Невідомий довідник",
		apperrors.ErrBadRequest,
		map[string]interface{}{"kind": ctx.Param("kind")},
	)
}

func (c *DirectoryController) List(ctx echo.Context) error {
	kind, err := parseKind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.directoryService.List(ctx.Request().Context(), kind)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Довідник успішно отримано", http.StatusOK)
}

func (c *DirectoryController) Find(ctx echo.Context) error {
	kind, err := parseKind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.directoryService.Find(ctx.Request().Context(), kind, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Елемент довідника знайдено", http.StatusOK)
}

func (c *DirectoryController) Create(ctx echo.Context) error {
	kind, err := parseKind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateDirectoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.directoryService.Create(ctx.Request().Context(), kind, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Елемент довідника створено", http.StatusCreated)
}

func (c *DirectoryController) Update(ctx echo.Context) error {
	kind, err := parseKind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateDirectoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.directoryService.Update(ctx.Request().Context(), kind, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Елемент довідника оновлено", http.StatusOK)
}

func (c *DirectoryController) Delete(ctx echo.Context) error {
	kind, err := parseKind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	confirmed := ctx.QueryParam("confirmed") == "true"
	if err := c.directoryService.Delete(ctx.Request().Context(), kind, id, confirmed); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Елемент довідника видалено", http.StatusOK)
}
