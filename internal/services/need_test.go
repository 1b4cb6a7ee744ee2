package services

import (
	"context"
	"testing"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/types"
	"equipment-admin/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newNeedFixture — сервіс запитів із довідниками: "Ноутбук" (комп'ютерна
// техніка), "Принтер" (ні), типи "Робочий SEDO" (робоче місце) та
// "Офісний" (ні).
func newNeedFixture(t *testing.T) (*repositories.RecordStore, *NeedService) {
	t.Helper()
	logger := zap.NewNop()
	ctx := context.Background()

	directoryRepo := repositories.NewDirectoryRepository()
	directoryService := NewDirectoryService(directoryRepo, logger)

	for _, name := range []string{"Ноутбук", "Принтер"} {
		_, err := directoryService.Create(ctx, constants.DirectoryNomenclature, dto.CreateDirectoryItemDTO{Name: name})
		require.NoError(t, err)
	}
	for _, name := range []string{"Робочий SEDO", "Офісний"} {
		_, err := directoryService.Create(ctx, constants.DirectoryType, dto.CreateDirectoryItemDTO{Name: name})
		require.NoError(t, err)
	}

	store := repositories.NewRecordStore()
	return store, NewNeedService(store, directoryService, logger)
}

func validCreatePayload() dto.CreateNeedDTO {
	return dto.CreateNeedDTO{
		NomenclatureID: 1, // Ноутбук
		TypeID:         1, // Робочий SEDO
		DepartmentID:   1,
		LocationID:     1,
		Quantity:       3,
		FullName:       "Коваленко Олег Петрович",
		RankID:         2,
		Position:       "інженер",
		Mobile:         "+380671112233",
		IsFrtCp:        true,
		Accounts: []dto.AccountDTO{
			{FullName: "Петренко Іван Іванович"},
			{FullName: "Сидоренко Марія Василівна"},
			{FullName: "Гнатюк Остап Романович"},
		},
	}
}

func TestNeedService_CreateSetsStatusAndDate(t *testing.T) {
	_, svc := newNeedFixture(t)

	created, err := svc.CreateNeed(context.Background(), validCreatePayload())
	require.NoError(t, err)

	assert.Equal(t, constants.NeedStatusPending, created.Status)
	assert.Equal(t, utils.Today(), created.RequestDate)
	require.Len(t, created.Accounts, 3, "на ноутбуки з типом 'робоче місце' — по обліковому запису на одиницю")
	assert.Equal(t, "Ноутбук", created.Nomenclature)
	assert.Equal(t, "Робочий SEDO", created.Type)
}

func TestNeedService_CreateMirrorsMvo(t *testing.T) {
	_, svc := newNeedFixture(t)

	payload := validCreatePayload()
	payload.IsFrtCp = true
	payload.MvoFullName = "Хтось Інший"

	created, err := svc.CreateNeed(context.Background(), payload)
	require.NoError(t, err)

	// При is_frt_cp поля МВО перезаписуються даними заявника.
	assert.Equal(t, payload.FullName, created.MvoFullName)
	assert.Equal(t, payload.RankID, created.MvoRankID)
	assert.Equal(t, payload.Position, created.MvoPosition)
	assert.Equal(t, payload.Mobile, created.MvoMobile)
}

func TestNeedService_CreateKeepsExplicitMvo(t *testing.T) {
	_, svc := newNeedFixture(t)

	payload := validCreatePayload()
	payload.IsFrtCp = false
	payload.MvoFullName = "Мельник Софія Андріївна"
	payload.MvoRankID = 5
	payload.MvoPosition = "начальник складу"
	payload.MvoMobile = "0952223344"

	created, err := svc.CreateNeed(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "Мельник Софія Андріївна", created.MvoFullName)
	assert.Equal(t, uint64(5), created.MvoRankID)
}

func TestNeedService_AccountsDroppedForNonWorkstation(t *testing.T) {
	_, svc := newNeedFixture(t)

	// Принтер — не комп'ютерна техніка, облікові записи зайві.
	payload := validCreatePayload()
	payload.NomenclatureID = 2

	created, err := svc.CreateNeed(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, created.Accounts)

	// Ноутбук, але тип "Офісний" — теж без облікових записів.
	payload = validCreatePayload()
	payload.TypeID = 2

	created, err = svc.CreateNeed(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, created.Accounts)
}

func TestNeedService_AccountsResyncTruncates(t *testing.T) {
	_, svc := newNeedFixture(t)

	payload := validCreatePayload()
	payload.Quantity = 2 // облікових записів три

	created, err := svc.CreateNeed(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, created.Accounts, 2)
	assert.Equal(t, "Петренко Іван Іванович", created.Accounts[0].FullName)
	assert.Equal(t, "Сидоренко Марія Василівна", created.Accounts[1].FullName)
}

func TestNeedService_AccountsResyncExtendRequiresNames(t *testing.T) {
	_, svc := newNeedFixture(t)

	// Кількість більша за список: доповнені порожні записи
	// не проходять перевірку ПІБ.
	payload := validCreatePayload()
	payload.Quantity = 5

	_, err := svc.CreateNeed(context.Background(), payload)
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestNeedService_UpdateRefusesTransitionStatuses(t *testing.T) {
	store, svc := newNeedFixture(t)
	ctx := context.Background()

	created, err := svc.CreateNeed(ctx, validCreatePayload())
	require.NoError(t, err)

	for _, status := range []string{constants.NeedStatusApproved, constants.NeedStatusRejected} {
		_, err := svc.UpdateNeed(ctx, created.ID, dto.UpdateNeedDTO{
			CreateNeedDTO: validCreatePayload(),
			Status:        status,
		})
		assert.ErrorIs(t, err, apperrors.ErrStatusIsTransition)
	}

	// Запис не змінився і нікуди не перемістився.
	found, err := store.FindNeed(created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.NeedStatusPending, found.Status)
	assert.Empty(t, store.ListIssuance())
	assert.Empty(t, store.ListRejected())
}

func TestNeedService_UpdateAllowsOrdinaryStatuses(t *testing.T) {
	_, svc := newNeedFixture(t)
	ctx := context.Background()

	created, err := svc.CreateNeed(ctx, validCreatePayload())
	require.NoError(t, err)

	updated, err := svc.UpdateNeed(ctx, created.ID, dto.UpdateNeedDTO{
		CreateNeedDTO: validCreatePayload(),
		Status:        constants.NeedStatusProcessing,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.NeedStatusProcessing, updated.Status)
	assert.Equal(t, created.RequestDate, updated.RequestDate, "дата запиту не змінюється при редагуванні")
}

func TestNeedService_UpdateUnknownStatus(t *testing.T) {
	_, svc := newNeedFixture(t)
	ctx := context.Background()

	created, err := svc.CreateNeed(ctx, validCreatePayload())
	require.NoError(t, err)

	_, err = svc.UpdateNeed(ctx, created.ID, dto.UpdateNeedDTO{
		CreateNeedDTO: validCreatePayload(),
		Status:        "Щось дивне",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownStatus)
}

func TestNeedService_DeleteRequiresConfirmation(t *testing.T) {
	store, svc := newNeedFixture(t)
	ctx := context.Background()

	created, err := svc.CreateNeed(ctx, validCreatePayload())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteNeed(ctx, created.ID, false), apperrors.ErrNotConfirmed)
	assert.Len(t, store.ListNeeds(), 1)

	require.NoError(t, svc.DeleteNeed(ctx, created.ID, true))
	assert.Empty(t, store.ListNeeds())
}

func TestNeedService_SearchCoversMvoAndAccounts(t *testing.T) {
	_, svc := newNeedFixture(t)
	ctx := context.Background()

	payload := validCreatePayload()
	payload.IsFrtCp = false
	payload.MvoFullName = "Сковорода Григорій Савич"
	payload.MvoRankID = 5
	payload.MvoPosition = "начальник складу"
	payload.MvoMobile = "+380671119922"
	_, err := svc.CreateNeed(ctx, payload)
	require.NoError(t, err)

	// Другий запит без МВО та облікових записів — пошук має його відсіяти.
	other := validCreatePayload()
	other.NomenclatureID = 2 // Принтер
	other.TypeID = 2         // Офісний
	other.Accounts = nil
	_, err = svc.CreateNeed(ctx, other)
	require.NoError(t, err)

	// Пошук працює над усіма полями запису: телефоном і посадою МВО
	// та ПІБ власника облікового запису.
	for _, term := range []string{"+380671119922", "начальник складу", "Сидоренко"} {
		list, pagination, err := svc.GetNeeds(ctx, types.TableQuery{Search: term, Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, list, 1, "пошук %q", term)
		assert.Equal(t, uint64(1), pagination.TotalCount)
		assert.Equal(t, "Сковорода Григорій Савич", list[0].MvoFullName)
	}
}

func TestNeedService_GetNeedsPagination(t *testing.T) {
	_, svc := newNeedFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.CreateNeed(ctx, validCreatePayload())
		require.NoError(t, err)
	}

	page, pagination, err := svc.GetNeeds(ctx, types.TableQuery{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, uint64(12), pagination.TotalCount)
	assert.Equal(t, 3, pagination.TotalPages)
}
