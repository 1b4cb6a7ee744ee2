package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/services"
	"equipment-admin/pkg/config"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NeedController struct {
	needService       services.NeedServiceInterface
	lifecycleService  services.LifecycleServiceInterface
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
	table             config.TableConfig
}

func NewNeedController(
	needService services.NeedServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	preferenceService services.PreferenceServiceInterface,
	logger *zap.Logger,
	table config.TableConfig,
) *NeedController {
	return &NeedController{
		needService:       needService,
		lifecycleService:  lifecycleService,
		preferenceService: preferenceService,
		logger:            logger,
		table:             table,
	}
}

func (c *NeedController) GetNeeds(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	q := utils.ParseTableQuery(ctx.Request().URL.Query(), c.table)

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		// Вивантажуємо все відфільтроване, без пагінації.
		q.Page = 1
		q.Limit = utils.MaxLimit * 1000
		list, _, err := c.needService.GetNeeds(reqCtx, q)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		columns, err := c.preferenceService.GetColumns(reqCtx, constants.CollectionNeeds)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return respondWithXLSX(ctx, "Потреби", columns, needExportRows(list))
	}

	list, pagination, err := c.needService.GetNeeds(reqCtx, q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, list, pagination, "Список запитів успішно отримано")
}

func (c *NeedController) FindNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.needService.FindNeed(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запит успішно знайдено", http.StatusOK)
}

func (c *NeedController) CreateNeed(ctx echo.Context) error {
	var payload dto.CreateNeedDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.needService.CreateNeed(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запит успішно створено", http.StatusCreated)
}

func (c *NeedController) UpdateNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateNeedDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.needService.UpdateNeed(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запит успішно оновлено", http.StatusOK)
}

func (c *NeedController) DeleteNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	confirmed := ctx.QueryParam("confirmed") == "true"
	if err := c.needService.DeleteNeed(ctx.Request().Context(), id, confirmed); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запит успішно видалено", http.StatusOK)
}

// ApproveNeed — погодження запиту. Мутація відбувається лише після
// явного підтвердження користувача.
func (c *NeedController) ApproveNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ConfirmDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}

	res, err := c.lifecycleService.Approve(ctx.Request().Context(), id, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запит погоджено та переміщено у видачу", http.StatusOK)
}

// RejectNeed — відхилення запиту з обов'язковою причиною.
func (c *NeedController) RejectNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RejectNeedDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.lifecycleService.Reject(ctx.Request().Context(), id, payload.Reason, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запит відхилено", http.StatusOK)
}

func needExportRows(list []dto.NeedDTO) []map[string]string {
	rows := make([]map[string]string, len(list))
	for i, d := range list {
		rows[i] = map[string]string{
			"id":              strconv.FormatUint(d.ID, 10),
			"nomenclature_id": d.Nomenclature,
			"type_id":         d.Type,
			"department_id":   d.Department,
			"location_id":     d.Location,
			"quantity":        strconv.Itoa(d.Quantity),
			"full_name":       d.FullName,
			"rank_id":         d.Rank,
			"position":        d.Position,
			"mobile":          d.Mobile,
			"mvo_full_name":   d.MvoFullName,
			"request_date":    d.RequestDate,
			"status":          d.Status,
			"notes":           d.Notes,
		}
	}
	return rows
}

// parseID розбирає параметр :id маршруту.
func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Невірний ID",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
