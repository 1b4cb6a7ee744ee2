package utils

import (
	"time"

	"equipment-admin/pkg/constants"
)

// Today повертає поточну дату у форматі дд.мм.рррр.
func Today() string {
	return time.Now().Format(constants.DateLayout)
}

// FormatDate форматує дату у прийнятий в системі вигляд.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// ParseDate розбирає дату формату дд.мм.рррр.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, s)
}
