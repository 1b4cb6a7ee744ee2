package services

import (
	"context"
	"time"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/entities"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/tableview"
	"equipment-admin/pkg/types"
	"equipment-admin/pkg/utils"

	"go.uber.org/zap"
)

type NeedServiceInterface interface {
	GetNeeds(ctx context.Context, q types.TableQuery) ([]dto.NeedDTO, types.Pagination, error)
	FindNeed(ctx context.Context, id uint64) (*dto.NeedDTO, error)
	CreateNeed(ctx context.Context, payload dto.CreateNeedDTO) (*dto.NeedDTO, error)
	UpdateNeed(ctx context.Context, id uint64, payload dto.UpdateNeedDTO) (*dto.NeedDTO, error)
	DeleteNeed(ctx context.Context, id uint64, confirmed bool) error
}

type NeedService struct {
	store            repositories.RecordStoreInterface
	directoryService DirectoryServiceInterface
	logger           *zap.Logger
}

func NewNeedService(
	store repositories.RecordStoreInterface,
	directoryService DirectoryServiceInterface,
	logger *zap.Logger,
) *NeedService {
	return &NeedService{
		store:            store,
		directoryService: directoryService,
		logger:           logger,
	}
}

func (s *NeedService) GetNeeds(ctx context.Context, q types.TableQuery) ([]dto.NeedDTO, types.Pagination, error) {
	page, pagination := tableview.Apply(s.store.ListNeeds(), q, "request_date", time.Now())
	out := make([]dto.NeedDTO, len(page))
	for i, n := range page {
		out[i] = toNeedDTO(n, s.directoryService)
	}
	return out, pagination, nil
}

func (s *NeedService) FindNeed(ctx context.Context, id uint64) (*dto.NeedDTO, error) {
	n, err := s.store.FindNeed(id)
	if err != nil {
		return nil, err
	}
	d := toNeedDTO(*n, s.directoryService)
	return &d, nil
}

func (s *NeedService) CreateNeed(ctx context.Context, payload dto.CreateNeedDTO) (*dto.NeedDTO, error) {
	record := s.toRecord(payload)
	record.Status = constants.NeedStatusPending
	record.RequestDate = utils.Today()

	if err := s.normalize(ctx, &record); err != nil {
		return nil, err
	}

	created := s.store.CreateNeed(record)
	s.logger.Info("створено запит на потребу",
		zap.Uint64("id", created.ID),
		zap.Uint64("nomenclature_id", created.NomenclatureID),
		zap.Int("quantity", created.Quantity),
	)
	d := toNeedDTO(created, s.directoryService)
	return &d, nil
}

// UpdateNeed оновлює запит на місці. Статуси "Погоджено" і "Відхилено"
// у формі редагування — це команди, а не дані: таке оновлення
// відхиляється на користь явних дій погодження/відхилення.
func (s *NeedService) UpdateNeed(ctx context.Context, id uint64, payload dto.UpdateNeedDTO) (*dto.NeedDTO, error) {
	existing, err := s.store.FindNeed(id)
	if err != nil {
		return nil, err
	}

	if payload.Status != "" {
		if constants.IsTransitionStatus(payload.Status) {
			return nil, apperrors.ErrStatusIsTransition
		}
		if !constants.IsValidNeedStatus(payload.Status) {
			return nil, apperrors.ErrUnknownStatus
		}
	}

	record := s.toRecord(payload.CreateNeedDTO)
	record.ID = id
	record.RequestDate = existing.RequestDate
	record.Status = existing.Status
	if payload.Status != "" {
		record.Status = payload.Status
	}

	if err := s.normalize(ctx, &record); err != nil {
		return nil, err
	}

	if err := s.store.UpdateNeed(id, record); err != nil {
		return nil, err
	}
	return s.FindNeed(ctx, id)
}

func (s *NeedService) DeleteNeed(ctx context.Context, id uint64, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	if err := s.store.DeleteNeed(id); err != nil {
		return err
	}
	s.logger.Info("видалено запит на потребу", zap.Uint64("id", id))
	return nil
}

func (s *NeedService) toRecord(payload dto.CreateNeedDTO) entities.NeedRecord {
	return entities.NeedRecord{
		NomenclatureID: payload.NomenclatureID,
		TypeID:         payload.TypeID,
		DepartmentID:   payload.DepartmentID,
		LocationID:     payload.LocationID,
		Quantity:       payload.Quantity,
		FullName:       payload.FullName,
		RankID:         payload.RankID,
		Position:       payload.Position,
		Mobile:         payload.Mobile,
		IsFrtCp:        payload.IsFrtCp,
		MvoFullName:    payload.MvoFullName,
		MvoRankID:      payload.MvoRankID,
		MvoPosition:    payload.MvoPosition,
		MvoMobile:      payload.MvoMobile,
		Notes:          payload.Notes,
		Accounts:       toAccountEntities(payload.Accounts),
	}
}

// normalize доводить запис до інваріантів перед записом у сховище:
// дзеркалить поля МВО при is_frt_cp і синхронізує облікові записи
// з кількістю для техніки класу "робоче місце".
func (s *NeedService) normalize(ctx context.Context, record *entities.NeedRecord) error {
	if record.IsFrtCp {
		record.MvoFullName = record.FullName
		record.MvoRankID = record.RankID
		record.MvoPosition = record.Position
		record.MvoMobile = record.Mobile
	}

	if !s.directoryService.RequiresAccounts(ctx, record.NomenclatureID, record.TypeID) {
		record.Accounts = nil
		return nil
	}

	record.Accounts = resyncAccounts(record.Accounts, record.Quantity)
	for i, a := range record.Accounts {
		if a.FullName == "" {
			return apperrors.NewInvalidInputError(
				"обліковий запис %d: ПІБ користувача обов'язкове", i+1)
		}
	}
	return nil
}

// resyncAccounts вирівнює список облікових записів під кількість:
// зростання додає порожні записи в кінець, зменшення відрізає з кінця.
func resyncAccounts(accounts []entities.Account, quantity int) []entities.Account {
	if quantity < 0 {
		quantity = 0
	}
	for len(accounts) < quantity {
		accounts = append(accounts, entities.Account{})
	}
	return accounts[:quantity]
}
