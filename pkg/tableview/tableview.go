// Пакет tableview — табличне подання колекції записів: фільтр за періодом,
// фільтр за локацією, пошук, сортування та пагінація. Подання читає дані і
// ніколи їх не змінює; порядок стадій фіксований, бо кожна наступна працює
// з результатом попередньої.
package tableview

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"equipment-admin/pkg/constants"
	"equipment-admin/pkg/types"
)

// Періоди швидкого фільтра за датою.
const (
	PeriodAll     = "all"
	PeriodDay     = "day"
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

var Periods = []string{PeriodAll, PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

func IsValidPeriod(period string) bool {
	for _, p := range Periods {
		if p == period {
			return true
		}
	}
	return false
}

// Row — запис, що вміє подати себе як набір полів "ключ -> рядкове значення".
// Пошук та сортування працюють над усіма полями, незалежно від того,
// які колонки зараз видимі.
type Row interface {
	TableRow() map[string]string
}

// LocationFieldKey — ключ поля локації у TableRow.
const LocationFieldKey = "location_id"

// IsWithinPeriod повертає true, якщо дата у форматі дд.мм.рррр потрапляє
// у період, відлічений назад від now. Нерозібрана дата не потрапляє
// в жоден період.
func IsWithinPeriod(dateStr, period string, now time.Time) bool {
	if period == "" || period == PeriodAll {
		return true
	}

	d, err := time.Parse(constants.DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var cutoff time.Time
	switch period {
	case PeriodDay:
		cutoff = today
	case PeriodWeek:
		cutoff = today.AddDate(0, 0, -7)
	case PeriodMonth:
		cutoff = today.AddDate(0, 0, -30)
	case PeriodQuarter:
		cutoff = today.AddDate(0, 0, -90)
	case PeriodYear:
		cutoff = today.AddDate(-1, 0, 0)
	default:
		return false
	}

	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(cutoff)
}

// Apply проганяє колекцію крізь увесь конвеєр і повертає сторінку записів
// разом із метаданими пагінації. dateField — ключ поля дати, за яким
// працює фільтр за періодом.
func Apply[T Row](items []T, q types.TableQuery, dateField string, now time.Time) ([]T, types.Pagination) {
	filtered := FilterByPeriod(items, q.Period, dateField, now)
	filtered = FilterByLocation(filtered, q.LocationID)
	filtered = Search(filtered, q.Search)
	Sort(filtered, q.SortField, q.SortDesc)
	return Paginate(filtered, q.Page, q.Limit)
}

// FilterByPeriod лишає записи, чия дата потрапляє в період.
func FilterByPeriod[T Row](items []T, period, dateField string, now time.Time) []T {
	if period == "" || period == PeriodAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if IsWithinPeriod(item.TableRow()[dateField], period, now) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByLocation лишає записи з вибраною локацією. 0 — всі локації.
func FilterByLocation[T Row](items []T, locationID uint64) []T {
	if locationID == 0 {
		return items
	}
	want := strconv.FormatUint(locationID, 10)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.TableRow()[LocationFieldKey] == want {
			out = append(out, item)
		}
	}
	return out
}

// Search лишає записи, де хоч одне поле містить term як підрядок
// без урахування регістру. Порожній term — записи без змін.
func Search[T Row](items []T, term string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, v := range item.TableRow() {
			if strings.Contains(strings.ToLower(v), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Sort — стабільне сортування за однією колонкою. Числа порівнюються як
// числа, дати дд.мм.рррр — хронологічно, решта — як рядки.
func Sort[T Row](items []T, field string, desc bool) {
	if field == "" {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := compareValues(items[i].TableRow()[field], items[j].TableRow()[field])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(a, b string) int {
	if fa, errA := strconv.ParseFloat(a, 64); errA == nil {
		if fb, errB := strconv.ParseFloat(b, 64); errB == nil {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	if da, errA := time.Parse(constants.DateLayout, a); errA == nil {
		if db, errB := time.Parse(constants.DateLayout, b); errB == nil {
			switch {
			case da.Before(db):
				return -1
			case da.After(db):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Paginate вирізає сторінку та рахує метадані.
func Paginate[T Row](items []T, page, limit int) ([]T, types.Pagination) {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], types.Pagination{
		TotalCount: uint64(total),
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
