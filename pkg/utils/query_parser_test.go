package utils

import (
	"net/url"
	"testing"

	"equipment-admin/pkg/config"
	"equipment-admin/pkg/tableview"

	"github.com/stretchr/testify/assert"
)

var testTable = config.TableConfig{
	DefaultPageSize: 25,
	PageSizes:       []int{10, 25, 50, 100},
}

func TestParseTableQuery_Defaults(t *testing.T) {
	q := ParseTableQuery(url.Values{}, testTable)

	assert.Equal(t, tableview.PeriodAll, q.Period)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Empty(t, q.Search)
	assert.Zero(t, q.LocationID)
}

func TestParseTableQuery_FullSet(t *testing.T) {
	values := url.Values{}
	values.Set("search", "Ноутбук")
	values.Set("period", "week")
	values.Set("location", "2")
	values.Set("sort", "quantity")
	values.Set("dir", "desc")
	values.Set("page", "3")
	values.Set("limit", "50")

	q := ParseTableQuery(values, testTable)
	assert.Equal(t, "Ноутбук", q.Search)
	assert.Equal(t, "week", q.Period)
	assert.Equal(t, uint64(2), q.LocationID)
	assert.Equal(t, "quantity", q.SortField)
	assert.True(t, q.SortDesc)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 50, q.Limit)
}

func TestParseTableQuery_InvalidValuesFallBack(t *testing.T) {
	values := url.Values{}
	values.Set("period", "decade")
	values.Set("location", "не число")
	values.Set("page", "-4")
	values.Set("limit", "0")

	// Невірні значення не ламають таблицю, а тихо стають типовими.
	q := ParseTableQuery(values, testTable)
	assert.Equal(t, tableview.PeriodAll, q.Period)
	assert.Zero(t, q.LocationID)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestParseTableQuery_LimitSnapsToAllowedSet(t *testing.T) {
	cases := map[string]int{
		"10":   10,
		"30":   25,
		"45":   50,
		"73":   50,
		"5000": 100,
		"1":    10,
	}
	for limit, want := range cases {
		values := url.Values{}
		values.Set("limit", limit)

		q := ParseTableQuery(values, testTable)
		assert.Equal(t, want, q.Limit, "limit=%s має притягнутися до %d", limit, want)
	}
}

func TestParseTableQuery_EmptyPageSizesCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "5000")

	q := ParseTableQuery(values, config.TableConfig{DefaultPageSize: 10})
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestParseTableQuery_BadDefaultLimit(t *testing.T) {
	q := ParseTableQuery(url.Values{}, config.TableConfig{})
	assert.Equal(t, DefaultLimit, q.Limit)
}
