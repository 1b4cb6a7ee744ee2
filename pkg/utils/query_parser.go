package utils

import (
	"net/url"
	"strconv"

	"equipment-admin/pkg/config"
	"equipment-admin/pkg/tableview"
	"equipment-admin/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseTableQuery збирає параметри табличного подання з query string.
// Невірні значення мовчки замінюються типовими — таблиця має
// відмалюватися завжди. table — табличні налаштування з конфігурації:
// типовий розмір сторінки та фіксований набір дозволених розмірів.
func ParseTableQuery(values url.Values, table config.TableConfig) types.TableQuery {
	defaultLimit := table.DefaultPageSize
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	q := types.TableQuery{
		Period: tableview.PeriodAll,
		Limit:  defaultLimit,
		Page:   1,
	}

	if search := values.Get("search"); search != "" {
		q.Search = search
	}

	if period := values.Get("period"); tableview.IsValidPeriod(period) {
		q.Period = period
	}

	if locStr := values.Get("location"); locStr != "" {
		if loc, err := strconv.ParseUint(locStr, 10, 64); err == nil {
			q.LocationID = loc
		}
	}

	if sortField := values.Get("sort"); sortField != "" {
		q.SortField = sortField
		q.SortDesc = values.Get("dir") == "desc"
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			q.Page = p
		}
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			q.Limit = snapPageSize(l, table.PageSizes)
		}
	}

	return q
}

// snapPageSize приводить запитаний розмір сторінки до найближчого з
// фіксованого набору. Порожній набір — звичайне обмеження зверху.
func snapPageSize(requested int, sizes []int) int {
	if len(sizes) == 0 {
		if requested > MaxLimit {
			return MaxLimit
		}
		return requested
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if abs(s-requested) < abs(best-requested) {
			best = s
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
