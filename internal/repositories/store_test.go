package repositories

import (
	"testing"

	"equipment-admin/internal/entities"
	apperrors "equipment-admin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_CreateAssignsSequentialIDs(t *testing.T) {
	store := NewRecordStore()

	first := store.CreateNeed(entities.NeedRecord{FullName: "Шевченко Т. Г."})
	second := store.CreateNeed(entities.NeedRecord{FullName: "Франко І. Я."})

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
}

func TestRecordStore_IDsNeverReused(t *testing.T) {
	store := NewRecordStore()

	first := store.CreateNeed(entities.NeedRecord{})
	require.NoError(t, store.DeleteNeed(first.ID))

	// Після видалення лічильник не відкочується.
	second := store.CreateNeed(entities.NeedRecord{})
	assert.Equal(t, uint64(2), second.ID)

	third := store.CreateIssuance(entities.IssuanceRecord{})
	require.NoError(t, store.DeleteIssuance(third.ID))
	fourth := store.CreateIssuance(entities.IssuanceRecord{})
	assert.Equal(t, uint64(2), fourth.ID)
}

func TestRecordStore_ListReturnsCopy(t *testing.T) {
	store := NewRecordStore()
	store.CreateNeed(entities.NeedRecord{FullName: "Оригінал"})

	list := store.ListNeeds()
	require.Len(t, list, 1)
	list[0].FullName = "Підмінений"

	again := store.ListNeeds()
	assert.Equal(t, "Оригінал", again[0].FullName, "мутація копії не має торкатися сховища")
}

func TestRecordStore_FindNotFound(t *testing.T) {
	store := NewRecordStore()

	_, err := store.FindNeed(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.FindIssuance(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.FindRejected(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordStore_UpdateAndDeleteNotFound(t *testing.T) {
	store := NewRecordStore()

	assert.ErrorIs(t, store.UpdateNeed(7, entities.NeedRecord{}), apperrors.ErrNotFound)
	assert.ErrorIs(t, store.DeleteNeed(7), apperrors.ErrNotFound)
	assert.ErrorIs(t, store.UpdateIssuance(7, entities.IssuanceRecord{}), apperrors.ErrNotFound)
	assert.ErrorIs(t, store.DeleteIssuance(7), apperrors.ErrNotFound)
	assert.ErrorIs(t, store.UpdateRejected(7, entities.RejectedRecord{}), apperrors.ErrNotFound)
	assert.ErrorIs(t, store.DeleteRejected(7), apperrors.ErrNotFound)
}

func TestRecordStore_UpdatePreservesID(t *testing.T) {
	store := NewRecordStore()
	created := store.CreateNeed(entities.NeedRecord{FullName: "Старе ім'я"})

	// ID у тілі оновлення ігнорується.
	require.NoError(t, store.UpdateNeed(created.ID, entities.NeedRecord{ID: 999, FullName: "Нове ім'я"}))

	found, err := store.FindNeed(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Нове ім'я", found.FullName)
}

func TestRecordStore_MoveNeedToIssuance(t *testing.T) {
	store := NewRecordStore()
	need := store.CreateNeed(entities.NeedRecord{
		NomenclatureID: 1,
		Quantity:       2,
		FullName:       "Коваленко О. П.",
	})

	moved, err := store.MoveNeedToIssuance(need.ID, func(n entities.NeedRecord) entities.IssuanceRecord {
		return entities.IssuanceRecord{
			NomenclatureID: n.NomenclatureID,
			Quantity:       n.Quantity,
			FullName:       n.FullName,
		}
	})
	require.NoError(t, err)

	// Запис зник із джерела і з'явився у призначенні з новим ID.
	_, err = store.FindNeed(need.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, store.ListNeeds())

	found, err := store.FindIssuance(moved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Коваленко О. П.", found.FullName)
	assert.Equal(t, 2, found.Quantity)
}

func TestRecordStore_MoveNeedToRejected(t *testing.T) {
	store := NewRecordStore()
	need := store.CreateNeed(entities.NeedRecord{FullName: "Коваленко О. П."})

	moved, err := store.MoveNeedToRejected(need.ID, func(n entities.NeedRecord) entities.RejectedRecord {
		return entities.RejectedRecord{FullName: n.FullName, Notes: "немає на складі"}
	})
	require.NoError(t, err)

	assert.Empty(t, store.ListNeeds())
	found, err := store.FindRejected(moved.ID)
	require.NoError(t, err)
	assert.Equal(t, "немає на складі", found.Notes)
}

func TestRecordStore_MoveRejectedRoundTrip(t *testing.T) {
	store := NewRecordStore()
	need := store.CreateNeed(entities.NeedRecord{FullName: "Коваленко О. П.", Quantity: 3})

	rejected, err := store.MoveNeedToRejected(need.ID, func(n entities.NeedRecord) entities.RejectedRecord {
		return entities.RejectedRecord{FullName: n.FullName, Quantity: n.Quantity}
	})
	require.NoError(t, err)

	restored, err := store.MoveRejectedToNeed(rejected.ID, func(r entities.RejectedRecord) entities.NeedRecord {
		return entities.NeedRecord{FullName: r.FullName, Quantity: r.Quantity}
	})
	require.NoError(t, err)

	assert.Empty(t, store.ListRejected())
	// Повернення видає свіжий ID, а не старий.
	assert.NotEqual(t, need.ID, restored.ID)
	assert.Equal(t, "Коваленко О. П.", restored.FullName)
	assert.Equal(t, 3, restored.Quantity)
}

func TestRecordStore_MoveRejectedToIssuance(t *testing.T) {
	store := NewRecordStore()
	rejected := store.CreateRejected(entities.RejectedRecord{FullName: "Бондаренко В. С."})

	moved, err := store.MoveRejectedToIssuance(rejected.ID, func(r entities.RejectedRecord) entities.IssuanceRecord {
		return entities.IssuanceRecord{FullName: r.FullName}
	})
	require.NoError(t, err)

	assert.Empty(t, store.ListRejected())
	found, err := store.FindIssuance(moved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Бондаренко В. С.", found.FullName)
}

func TestRecordStore_MoveMissingSource(t *testing.T) {
	store := NewRecordStore()

	_, err := store.MoveNeedToIssuance(5, func(n entities.NeedRecord) entities.IssuanceRecord {
		return entities.IssuanceRecord{}
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, store.ListIssuance(), "невдале переміщення не має нічого створювати")

	_, err = store.MoveRejectedToNeed(5, func(r entities.RejectedRecord) entities.NeedRecord {
		return entities.NeedRecord{}
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, store.ListNeeds())
}
