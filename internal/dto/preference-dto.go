package dto

// SetPeriodDTO: швидкий фільтр за періодом (all/day/week/month/quarter/year).
type SetPeriodDTO struct {
	Period string `json:"period" validate:"required"`
}

// SetLocationDTO: фільтр за локацією. 0 — всі локації.
type SetLocationDTO struct {
	LocationID uint64 `json:"location_id"`
}

// SetColumnsDTO: повний список видимих колонок таблиці.
type SetColumnsDTO struct {
	Columns []string `json:"columns" validate:"required"`
}

// ToggleColumnDTO: перемикання видимості однієї колонки.
type ToggleColumnDTO struct {
	Column string `json:"column" validate:"required"`
}

// PreferencesDTO: поточний збережений стан панелі.
type PreferencesDTO struct {
	Period     string              `json:"period"`
	LocationID uint64              `json:"location_id"`
	Columns    map[string][]string `json:"columns"`
}
