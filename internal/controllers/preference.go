package controllers

import (
	"net/http"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/services"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface, logger *zap.Logger) *PreferenceController {
	return &PreferenceController{preferenceService: preferenceService, logger: logger}
}

func (c *PreferenceController) GetPreferences(ctx echo.Context) error {
	res, err := c.preferenceService.GetPreferences(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Налаштування успішно отримано", http.StatusOK)
}

func (c *PreferenceController) SetPeriod(ctx echo.Context) error {
	var payload dto.SetPeriodDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.preferenceService.SetPeriod(ctx.Request().Context(), payload.Period); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Період фільтра збережено", http.StatusOK)
}

func (c *PreferenceController) SetLocation(ctx echo.Context) error {
	var payload dto.SetLocationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}

	if err := c.preferenceService.SetLocation(ctx.Request().Context(), payload.LocationID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Фільтр локації збережено", http.StatusOK)
}

func (c *PreferenceController) GetColumns(ctx echo.Context) error {
	res, err := c.preferenceService.GetColumns(ctx.Request().Context(), ctx.Param("collection"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Видимі колонки отримано", http.StatusOK)
}

func (c *PreferenceController) SetColumns(ctx echo.Context) error {
	var payload dto.SetColumnsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.preferenceService.SetColumns(ctx.Request().Context(), ctx.Param("collection"), payload.Columns); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Видимі колонки збережено", http.StatusOK)
}

func (c *PreferenceController) ToggleColumn(ctx echo.Context) error {
	var payload dto.ToggleColumnDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.preferenceService.ToggleColumn(ctx.Request().Context(), ctx.Param("collection"), payload.Column)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Видимість колонки перемкнуто", http.StatusOK)
}
