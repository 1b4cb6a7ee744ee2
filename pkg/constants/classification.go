package constants

import "strings"

// Підрядки назв, за якими номенклатура визнається комп'ютерною технікою,
// а тип — робочим місцем (АРМ/СЕДО). Евристика застосовується один раз
// при створенні запису довідника; подальше перейменування прапорець
// не змінює.
var computerClassMarkers = []string{
	"ноутбук",
	"комп'ютер",
	"моноблок",
	"системний блок",
	"арм",
}

var workstationMarkers = []string{
	"робоч",
	"седо",
	"sedo",
	"арм",
}

func containsAny(name string, markers []string) bool {
	lowered := strings.ToLower(name)
	for _, m := range markers {
		if strings.Contains(lowered, m) {
			return true
		}
	}
	return false
}

// IsComputerClassName визначає за назвою номенклатури, чи це комп'ютерна техніка.
func IsComputerClassName(name string) bool {
	return containsAny(name, computerClassMarkers)
}

// IsWorkstationTypeName визначає за назвою типу, чи це робоче місце (СЕДО/АРМ).
func IsWorkstationTypeName(name string) bool {
	return containsAny(name, workstationMarkers)
}
