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

type IssuanceController struct {
	issuanceService   services.IssuanceServiceInterface
	lifecycleService  services.LifecycleServiceInterface
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
	table             config.TableConfig
}

func NewIssuanceController(
	issuanceService services.IssuanceServiceInterface,
	lifecycleService services.LifecycleServiceInterface,
	preferenceService services.PreferenceServiceInterface,
	logger *zap.Logger,
	table config.TableConfig,
) *IssuanceController {
	return &IssuanceController{
		issuanceService:   issuanceService,
		lifecycleService:  lifecycleService,
		preferenceService: preferenceService,
		logger:            logger,
		table:             table,
	}
}

func (c *IssuanceController) GetIssuance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	q := utils.ParseTableQuery(ctx.Request().URL.Query(), c.table)

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		q.Page = 1
		q.Limit = utils.MaxLimit * 1000
		list, _, err := c.issuanceService.GetIssuance(reqCtx, q)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		columns, err := c.preferenceService.GetColumns(reqCtx, constants.CollectionIssuance)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return respondWithXLSX(ctx, "Видача", columns, issuanceExportRows(list))
	}

	list, pagination, err := c.issuanceService.GetIssuance(reqCtx, q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, list, pagination, "Список видачі успішно отримано")
}

func (c *IssuanceController) FindIssuance(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.issuanceService.FindIssuance(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис видачі успішно знайдено", http.StatusOK)
}

func (c *IssuanceController) CreateIssuance(ctx echo.Context) error {
	var payload dto.CreateIssuanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.issuanceService.CreateIssuance(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис видачі успішно створено", http.StatusCreated)
}

func (c *IssuanceController) UpdateIssuance(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateIssuanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.issuanceService.UpdateIssuance(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запис видачі успішно оновлено", http.StatusOK)
}

func (c *IssuanceController) DeleteIssuance(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	confirmed := ctx.QueryParam("confirmed") == "true"
	if err := c.issuanceService.DeleteIssuance(ctx.Request().Context(), id, confirmed); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запис видачі успішно видалено", http.StatusOK)
}

// IssueIssuance — позначити техніку виданою.
func (c *IssuanceController) IssueIssuance(ctx echo.Context) error {
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

	res, err := c.lifecycleService.Issue(ctx.Request().Context(), id, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Техніку позначено виданою", http.StatusOK)
}

// SetStatus — прямий перехід статусу видачі.
func (c *IssuanceController) SetStatus(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.SetIssuanceStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.lifecycleService.SetIssuanceStatus(ctx.Request().Context(), id, payload.Status, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Статус видачі змінено", http.StatusOK)
}

// ReturnIssuance — повернення техніки у чергу на видачу.
func (c *IssuanceController) ReturnIssuance(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ReturnIssuanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Невірне тіло запиту", err, nil),
			c.logger,
		)
	}

	res, err := c.lifecycleService.ReturnToPending(ctx.Request().Context(), id, payload.Notes, payload.Confirmed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Техніку повернуто в чергу на видачу", http.StatusOK)
}

func issuanceExportRows(list []dto.IssuanceDTO) []map[string]string {
	rows := make([]map[string]string, len(list))
	for i, d := range list {
		rows[i] = map[string]string{
			"id":              strconv.FormatUint(d.ID, 10),
			"nomenclature_id": d.Nomenclature,
			"type_id":         d.Type,
			"department_id":   d.Department,
			"location_id":     d.Location,
			"quantity":        strconv.Itoa(d.Quantity),
			"model":           d.Model,
			"serial_number":   d.SerialNumber,
			"full_name":       d.FullName,
			"rank_id":         d.Rank,
			"position":        d.Position,
			"mobile":          d.Mobile,
			"request_number":  d.RequestNumber,
			"issue_date":      d.IssueDate,
			"status":          d.Status,
			"notes":           d.Notes,
		}
	}
	return rows
}
