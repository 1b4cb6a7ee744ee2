package utils

import (
	"errors"
	"net/http"
	"strings"

	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	response := &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	return ctx.JSON(code, response)
}

// ListResponse — успішна відповідь зі списком та метаданими пагінації.
func ListResponse(ctx echo.Context, list interface{}, pagination types.Pagination, message string) error {
	response := &HTTPResponse{
		Status: true,
		Body: map[string]interface{}{
			"list":       list,
			"pagination": pagination,
		},
		Message: message,
	}
	return ctx.JSON(http.StatusOK, response)
}

// Відповідність доменних помилок HTTP-кодам.
var errorStatusCodes = map[error]int{
	apperrors.ErrNotFound:             http.StatusNotFound,
	apperrors.ErrBadRequest:           http.StatusBadRequest,
	apperrors.ErrNotConfirmed:         http.StatusConflict,
	apperrors.ErrEmptyRejectReason:    http.StatusUnprocessableEntity,
	apperrors.ErrStatusIsTransition:   http.StatusUnprocessableEntity,
	apperrors.ErrUnknownStatus:        http.StatusUnprocessableEntity,
	apperrors.ErrAccountCountMismatch: http.StatusUnprocessableEntity,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP помилка",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, "поле '"+e.Field()+"' не пройшло перевірку '"+e.Tag()+"'")
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Помилка валідації: " + strings.Join(msgs, "; "),
		})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	for sentinel, code := range errorStatusCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(code, map[string]interface{}{
				"status":  false,
				"message": sentinel.Error(),
			})
		}
	}

	logger.Error("Неочікувана помилка", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Внутрішня помилка сервера",
	})
}
