package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/tableview"

	"go.uber.org/zap"
)

type PreferenceServiceInterface interface {
	GetPreferences(ctx context.Context) (*dto.PreferencesDTO, error)
	SetPeriod(ctx context.Context, period string) error
	SetLocation(ctx context.Context, locationID uint64) error
	GetColumns(ctx context.Context, collection string) ([]string, error)
	SetColumns(ctx context.Context, collection string, columns []string) error
	ToggleColumn(ctx context.Context, collection, column string) ([]string, error)
}

// Канонічний порядок колонок кожної таблиці. Він же — видимість
// за замовчуванням (усі колонки) і порядок, у якому колонка
// повертається на місце після повторного перемикання.
var defaultColumns = map[string][]string{
	constants.CollectionNeeds: {
		"id", "nomenclature_id", "type_id", "department_id", "location_id",
		"quantity", "full_name", "rank_id", "position", "mobile",
		"mvo_full_name", "request_date", "status", "notes",
	},
	constants.CollectionIssuance: {
		"id", "nomenclature_id", "type_id", "department_id", "location_id",
		"quantity", "model", "serial_number", "full_name", "rank_id",
		"position", "mobile", "request_number", "issue_date", "status", "notes",
	},
	constants.CollectionRejected: {
		"id", "nomenclature_id", "type_id", "department_id", "location_id",
		"quantity", "full_name", "rank_id", "position", "mobile",
		"status", "notes", "rejected_date",
	},
}

// PreferenceService зберігає стан панелі: період, локацію та видимі
// колонки. Видимість колонок — проєкція лише на рендері, на пошук,
// сортування і фільтри вона не впливає.
type PreferenceService struct {
	prefRepo repositories.PreferenceRepositoryInterface
	logger   *zap.Logger
}

func NewPreferenceService(prefRepo repositories.PreferenceRepositoryInterface, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo, logger: logger}
}

func (s *PreferenceService) GetPreferences(ctx context.Context) (*dto.PreferencesDTO, error) {
	prefs := &dto.PreferencesDTO{
		Period:  tableview.PeriodAll,
		Columns: make(map[string][]string),
	}

	if v, err := s.prefRepo.Get(ctx, constants.PrefKeyPeriodFilter); err == nil {
		prefs.Period = v
	}
	if v, err := s.prefRepo.Get(ctx, constants.PrefKeyLocationFilter); err == nil {
		if loc, err := strconv.ParseUint(v, 10, 64); err == nil {
			prefs.LocationID = loc
		}
	}

	for collection := range defaultColumns {
		cols, err := s.GetColumns(ctx, collection)
		if err != nil {
			return nil, err
		}
		prefs.Columns[collection] = cols
	}
	return prefs, nil
}

func (s *PreferenceService) SetPeriod(ctx context.Context, period string) error {
	if !tableview.IsValidPeriod(period) {
		return apperrors.NewInvalidInputError("невідомий період фільтра: %q", period)
	}
	return s.prefRepo.Set(ctx, constants.PrefKeyPeriodFilter, period)
}

func (s *PreferenceService) SetLocation(ctx context.Context, locationID uint64) error {
	return s.prefRepo.Set(ctx, constants.PrefKeyLocationFilter, strconv.FormatUint(locationID, 10))
}

func (s *PreferenceService) GetColumns(ctx context.Context, collection string) ([]string, error) {
	defaults, ok := defaultColumns[collection]
	if !ok {
		return nil, apperrors.NewInvalidInputError("невідома таблиця: %q", collection)
	}

	raw, err := s.prefRepo.Get(ctx, columnsKey(collection))
	if errors.Is(err, apperrors.ErrNotFound) {
		out := make([]string, len(defaults))
		copy(out, defaults)
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	var cols []string
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		// Зіпсоване значення — повертаємось до повного набору.
		s.logger.Warn("не вдалося розібрати збережені колонки, показуємо всі",
			zap.String("collection", collection), zap.Error(err))
		out := make([]string, len(defaults))
		copy(out, defaults)
		return out, nil
	}
	return cols, nil
}

func (s *PreferenceService) SetColumns(ctx context.Context, collection string, columns []string) error {
	if _, ok := defaultColumns[collection]; !ok {
		return apperrors.NewInvalidInputError("невідома таблиця: %q", collection)
	}
	raw, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	return s.prefRepo.Set(ctx, columnsKey(collection), string(raw))
}

// ToggleColumn перемикає видимість однієї колонки. Повторне перемикання
// повертає набір у попередній стан: колонка стає на своє канонічне місце.
func (s *PreferenceService) ToggleColumn(ctx context.Context, collection, column string) ([]string, error) {
	defaults, ok := defaultColumns[collection]
	if !ok {
		return nil, apperrors.NewInvalidInputError("невідома таблиця: %q", collection)
	}

	current, err := s.GetColumns(ctx, collection)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]bool, len(current))
	for _, c := range current {
		visible[c] = true
	}
	visible[column] = !visible[column]

	next := make([]string, 0, len(defaults))
	for _, c := range defaults {
		if visible[c] {
			next = append(next, c)
		}
	}

	if err := s.SetColumns(ctx, collection, next); err != nil {
		return nil, err
	}
	return next, nil
}

func columnsKey(collection string) string {
	return fmt.Sprintf(constants.PrefKeyColumns, collection)
}
