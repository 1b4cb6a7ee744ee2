package services

import (
	"context"
	"testing"

	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/tableview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPreferenceService() *PreferenceService {
	return NewPreferenceService(repositories.NewMemoryPreferenceRepository(), zap.NewNop())
}

func TestPreferenceService_Defaults(t *testing.T) {
	svc := newPreferenceService()

	prefs, err := svc.GetPreferences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tableview.PeriodAll, prefs.Period)
	assert.Equal(t, uint64(0), prefs.LocationID)

	// За замовчуванням видимі всі колонки кожної таблиці.
	for _, collection := range []string{constants.CollectionNeeds, constants.CollectionIssuance, constants.CollectionRejected} {
		assert.Equal(t, defaultColumns[collection], prefs.Columns[collection])
	}
}

func TestPreferenceService_SetPeriod(t *testing.T) {
	svc := newPreferenceService()
	ctx := context.Background()

	require.NoError(t, svc.SetPeriod(ctx, tableview.PeriodWeek))
	prefs, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, tableview.PeriodWeek, prefs.Period)

	var invalid *apperrors.InvalidInputError
	err = svc.SetPeriod(ctx, "decade")
	require.ErrorAs(t, err, &invalid)
}

func TestPreferenceService_SetLocation(t *testing.T) {
	svc := newPreferenceService()
	ctx := context.Background()

	require.NoError(t, svc.SetLocation(ctx, 3))
	prefs, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), prefs.LocationID)

	// 0 — повернення до всіх локацій.
	require.NoError(t, svc.SetLocation(ctx, 0))
	prefs, err = svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), prefs.LocationID)
}

func TestPreferenceService_ToggleColumnTwiceRestoresSet(t *testing.T) {
	svc := newPreferenceService()
	ctx := context.Background()

	before, err := svc.GetColumns(ctx, constants.CollectionNeeds)
	require.NoError(t, err)

	hidden, err := svc.ToggleColumn(ctx, constants.CollectionNeeds, "quantity")
	require.NoError(t, err)
	assert.NotContains(t, hidden, "quantity")
	assert.Len(t, hidden, len(before)-1)

	// Повторне перемикання повертає колонку на канонічне місце.
	restored, err := svc.ToggleColumn(ctx, constants.CollectionNeeds, "quantity")
	require.NoError(t, err)
	assert.Equal(t, before, restored)
}

func TestPreferenceService_ToggleKeepsCanonicalOrder(t *testing.T) {
	svc := newPreferenceService()
	ctx := context.Background()

	// Ховаємо і повертаємо колонки врозбій: порядок лишається канонічним.
	for _, column := range []string{"status", "id", "full_name"} {
		_, err := svc.ToggleColumn(ctx, constants.CollectionNeeds, column)
		require.NoError(t, err)
	}
	for _, column := range []string{"full_name", "status", "id"} {
		_, err := svc.ToggleColumn(ctx, constants.CollectionNeeds, column)
		require.NoError(t, err)
	}

	cols, err := svc.GetColumns(ctx, constants.CollectionNeeds)
	require.NoError(t, err)
	assert.Equal(t, defaultColumns[constants.CollectionNeeds], cols)
}

func TestPreferenceService_UnknownCollection(t *testing.T) {
	svc := newPreferenceService()
	ctx := context.Background()

	var invalid *apperrors.InvalidInputError
	_, err := svc.GetColumns(ctx, "archive")
	require.ErrorAs(t, err, &invalid)

	_, err = svc.ToggleColumn(ctx, "archive", "id")
	require.ErrorAs(t, err, &invalid)

	err = svc.SetColumns(ctx, "archive", []string{"id"})
	require.ErrorAs(t, err, &invalid)
}

func TestPreferenceService_CorruptedColumnsFallBackToDefaults(t *testing.T) {
	repo := repositories.NewMemoryPreferenceRepository()
	svc := NewPreferenceService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "columns:needs", "{зіпсований json"))

	cols, err := svc.GetColumns(ctx, constants.CollectionNeeds)
	require.NoError(t, err)
	assert.Equal(t, defaultColumns[constants.CollectionNeeds], cols)
}

func TestPreferenceService_CorruptedLocationFallsBackToZero(t *testing.T) {
	repo := repositories.NewMemoryPreferenceRepository()
	svc := NewPreferenceService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, constants.PrefKeyLocationFilter, "не число"))

	prefs, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), prefs.LocationID)
}
