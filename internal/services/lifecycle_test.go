package services

import (
	"context"
	"testing"

	"equipment-admin/internal/entities"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newLifecycleFixture збирає сховище з посівними довідниками
// та сервіси поверх нього.
func newLifecycleFixture(t *testing.T) (*repositories.RecordStore, *LifecycleService) {
	t.Helper()
	logger := zap.NewNop()

	directoryRepo := repositories.NewDirectoryRepository()
	directoryService := NewDirectoryService(directoryRepo, logger)

	store := repositories.NewRecordStore()
	lifecycle := NewLifecycleService(store, directoryService, logger)
	return store, lifecycle
}

func seedPendingNeed(store *repositories.RecordStore) entities.NeedRecord {
	return store.CreateNeed(entities.NeedRecord{
		NomenclatureID: 1,
		TypeID:         1,
		DepartmentID:   1,
		LocationID:     2,
		Quantity:       2,
		FullName:       "Коваленко Олег Петрович",
		RankID:         3,
		Position:       "інженер",
		Mobile:         "+380671112233",
		Status:         constants.NeedStatusPending,
		RequestDate:    utils.Today(),
		Notes:          "для нового відділу",
	})
}

func TestLifecycle_Approve(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)
	ctx := context.Background()

	issued, err := lifecycle.Approve(ctx, need.ID, true)
	require.NoError(t, err)

	// Запис зник із потреб, у черзі на видачу — рівно один новий.
	assert.Empty(t, store.ListNeeds())
	require.Len(t, store.ListIssuance(), 1)

	assert.Equal(t, constants.IssuanceStatusPending, issued.Status)
	assert.Equal(t, utils.Today(), issued.IssueDate)
	assert.NotEmpty(t, issued.RequestNumber)

	// Отримувач — копія заявника, кількість збережена.
	assert.Equal(t, "Коваленко Олег Петрович", issued.FullName)
	assert.Equal(t, uint64(3), issued.RankID)
	assert.Equal(t, "інженер", issued.Position)
	assert.Equal(t, 2, issued.Quantity)
}

func TestLifecycle_ApproveNotConfirmed(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)

	_, err := lifecycle.Approve(context.Background(), need.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)

	// Без підтвердження стан не змінюється.
	assert.Len(t, store.ListNeeds(), 1)
	assert.Empty(t, store.ListIssuance())
}

func TestLifecycle_ApproveMissingNeed(t *testing.T) {
	_, lifecycle := newLifecycleFixture(t)

	_, err := lifecycle.Approve(context.Background(), 99, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLifecycle_Reject(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)

	rejected, err := lifecycle.Reject(context.Background(), need.ID, "немає на складі", true)
	require.NoError(t, err)

	assert.Empty(t, store.ListNeeds())
	require.Len(t, store.ListRejected(), 1)

	assert.Equal(t, constants.NeedStatusRejected, rejected.Status)
	assert.Equal(t, "немає на складі", rejected.Notes)
	assert.Equal(t, utils.Today(), rejected.RejectedDate)
}

func TestLifecycle_RejectRequiresReason(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)

	for _, reason := range []string{"", "   ", "\t"} {
		_, err := lifecycle.Reject(context.Background(), need.ID, reason, true)
		assert.ErrorIs(t, err, apperrors.ErrEmptyRejectReason)
	}
	assert.Len(t, store.ListNeeds(), 1, "невдале відхилення не рухає запис")
}

func TestLifecycle_RejectNotConfirmed(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)

	_, err := lifecycle.Reject(context.Background(), need.ID, "причина", false)
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)
	assert.Len(t, store.ListNeeds(), 1)
	assert.Empty(t, store.ListRejected())
}

func TestLifecycle_RoundTripPreservesFields(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	need := seedPendingNeed(store)
	ctx := context.Background()

	rejected, err := lifecycle.Reject(ctx, need.ID, "помилкове відхилення", true)
	require.NoError(t, err)

	restored, err := lifecycle.RestoreToNeed(ctx, rejected.ID, "", true)
	require.NoError(t, err)

	// Потреба -> відхилені -> потреба: доменні поля вціліли.
	assert.Equal(t, need.NomenclatureID, restored.NomenclatureID)
	assert.Equal(t, need.TypeID, restored.TypeID)
	assert.Equal(t, need.DepartmentID, restored.DepartmentID)
	assert.Equal(t, need.LocationID, restored.LocationID)
	assert.Equal(t, need.Quantity, restored.Quantity)
	assert.Equal(t, need.FullName, restored.FullName)
	assert.Equal(t, need.Mobile, restored.Mobile)

	assert.Equal(t, constants.NeedStatusPending, restored.Status)
	assert.Equal(t, utils.Today(), restored.RequestDate)
	assert.Empty(t, store.ListRejected())
}

func TestLifecycle_RestoreToIssuance(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	rejected := store.CreateRejected(entities.RejectedRecord{
		NomenclatureID: 2,
		Quantity:       1,
		FullName:       "Бондаренко Віра Степанівна",
		Status:         constants.NeedStatusRejected,
		Notes:          "стара причина",
	})

	restored, err := lifecycle.RestoreToIssuance(context.Background(), rejected.ID, "погоджено повторно", true)
	require.NoError(t, err)

	assert.Empty(t, store.ListRejected())
	assert.Equal(t, constants.IssuanceStatusPending, restored.Status)
	assert.NotEmpty(t, restored.RequestNumber)
	assert.Equal(t, "погоджено повторно", restored.Notes)
}

func TestLifecycle_Issue(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	rec := store.CreateIssuance(entities.IssuanceRecord{
		Status:    constants.IssuanceStatusReady,
		IssueDate: "01.01.2020",
	})

	issued, err := lifecycle.Issue(context.Background(), rec.ID, true)
	require.NoError(t, err)

	assert.Equal(t, constants.IssuanceStatusIssued, issued.Status)
	assert.Equal(t, utils.Today(), issued.IssueDate, "дата видачі оновлюється при зміні статусу")
}

func TestLifecycle_SetIssuanceStatus(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	rec := store.CreateIssuance(entities.IssuanceRecord{Status: constants.IssuanceStatusIssued})
	ctx := context.Background()

	// Таблиці заборонених переходів немає: навіть із "Видано" можна
	// перейти у будь-який статус переліку.
	for _, status := range constants.IssuanceStatuses {
		updated, err := lifecycle.SetIssuanceStatus(ctx, rec.ID, status, true)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestLifecycle_SetIssuanceStatusUnknown(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	rec := store.CreateIssuance(entities.IssuanceRecord{Status: constants.IssuanceStatusPending})

	_, err := lifecycle.SetIssuanceStatus(context.Background(), rec.ID, "Загублено", true)
	assert.ErrorIs(t, err, apperrors.ErrUnknownStatus)

	found, findErr := store.FindIssuance(rec.ID)
	require.NoError(t, findErr)
	assert.Equal(t, constants.IssuanceStatusPending, found.Status)
}

func TestLifecycle_ReturnToPending(t *testing.T) {
	store, lifecycle := newLifecycleFixture(t)
	rec := store.CreateIssuance(entities.IssuanceRecord{
		Status: constants.IssuanceStatusIssued,
		Notes:  "видано у серпні",
	})

	returned, err := lifecycle.ReturnToPending(context.Background(), rec.ID, "повернули несправним", true)
	require.NoError(t, err)

	assert.Equal(t, constants.IssuanceStatusPending, returned.Status)
	assert.Equal(t, "повернули несправним", returned.Notes)

	// Без нотаток старі лишаються.
	again, err := lifecycle.ReturnToPending(context.Background(), rec.ID, "", true)
	require.NoError(t, err)
	assert.Equal(t, "повернули несправним", again.Notes)
}
