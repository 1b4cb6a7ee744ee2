package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// Заголовки колонок для вивантаження в Excel. Ключі збігаються з
// ключами TableRow та збережених налаштувань видимості.
var columnHeaders = map[string]string{
	"id":              "№",
	"nomenclature_id": "Номенклатура",
	"type_id":         "Тип",
	"department_id":   "Відділ",
	"location_id":     "Локація",
	"quantity":        "Кількість",
	"full_name":       "ПІБ",
	"rank_id":         "Звання",
	"position":        "Посада",
	"mobile":          "Мобільний",
	"mvo_full_name":   "ПІБ МВО",
	"request_date":    "Дата запиту",
	"status":          "Статус",
	"notes":           "Примітки",
	"model":           "Модель",
	"serial_number":   "Серійний номер",
	"request_number":  "Номер заявки",
	"issue_date":      "Дата видачі",
	"rejected_date":   "Дата відхилення",
}

// respondWithXLSX вивантажує табличне подання у файл Excel. Видимість
// колонок застосовується саме тут — це проєкція на рендері.
func respondWithXLSX(ctx echo.Context, sheet string, columns []string, rows []map[string]string) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		if h, ok := columnHeaders[col]; ok {
			headers[i] = h
		} else {
			headers[i] = col
		}
	}
	f.SetSheetRow(sheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheet, "A1", lastCell, style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			values[j] = row[col]
		}
		f.SetSheetRow(sheet, cell, &values)
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", sheet, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
