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

type RejectedController struct {
	rejectedService   services.RejectedServiceInterface
	lifecycleService  services.LifecycleServiceInterface
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
	table             config.TableConfig
}

func NewRejectedController(
	rejectedService services.RejectedServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	preferenceService services.PreferenceServiceInterface,
	logger *zap.Logger,
	table config.TableConfig,
) *RejectedController {
	return &RejectedController{
		rejectedService:   rejectedService,
		lifecycleService:  lifecycleService,
		preferenceService: preferenceService,
		logger:            logger,
		table:             table,
	}
}

func (c *RejectedController) GetRejected(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	q := utils.ParseTableQuery(ctx.Request().URL.Query(), c.table)

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		q.Page = 1
		q.Limit = utils.MaxLimit * 1000
		list, _, err := c.rejectedService.GetRejected(reqCtx, q)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		columns, err := c.preferenceService.GetColumns(reqCtx, constants.CollectionRejected)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return respondWithXLSX(ctx, "Відхилені", columns, rejectedExportRows(list))
	}

	list, pagination, err := c.rejectedService.GetRejected(reqCtx, q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, list, pagination, "Журнал відхилених успішно отримано")
}

func (c *RejectedController) FindRejected(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.rejectedService.FindRejected(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис успішно знайдено", http.StatusOK)
}

func (c *RejectedController) DeleteRejected(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	confirmed := ctx.QueryParam("confirmed") == "true"
	if err := c.rejectedService.DeleteRejected(ctx.Request().Context(), id, confirmed); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запис успішно видалено", http.StatusOK)
}

// RestoreToNeed — повернути відхилений запис у запити на потребу.
func (c *RejectedController) RestoreToNeed(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RestoreRejectedDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}

	res, err := c.lifecycleService.RestoreToNeed(ctx.Request().Context(), id, payload.Notes, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис повернуто у запити на потребу", http.StatusOK)
}

// RestoreToIssuance — повернути відхилений запис у чергу на видачу.
func (c *RejectedController) RestoreToIssuance(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RestoreRejectedDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}

	res, err := c.lifecycleService.RestoreToIssuance(ctx.Request().Context(), id, payload.Notes, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис повернуто у чергу на видачу", http.StatusOK)
}

func rejectedExportRows(list []dto.RejectedDTO) []map[string]string {
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
			"status":          d.Status,
			"notes":           d.Notes,
			"rejected_date":   d.RejectedDate,
		}
	}
	return rows
}
