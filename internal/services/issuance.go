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

type IssuanceServiceInterface interface {
	GetIssuance(ctx context.Context, q types.TableQuery) ([]dto.IssuanceDTO, types.Pagination, error)
	FindIssuance(ctx context.Context, id uint64) (*dto.IssuanceDTO, error)
	CreateIssuance(ctx context.Context, payload dto.CreateIssuanceDTO) (*dto.IssuanceDTO, error)
	UpdateIssuance(ctx context.Context, id uint64, payload dto.UpdateIssuanceDTO) (*dto.IssuanceDTO, error)
	DeleteIssuance(ctx context.Context, id uint64, confirmed bool) error
}

type IssuanceService struct {
	store            repositories.RecordStoreInterface
	directoryService DirectoryServiceInterface
	logger           *zap.Logger
}

func NewIssuanceService(
	store repositories.RecordStoreInterface,
	directoryService DirectoryServiceInterface,
	logger *zap.Logger,
) *IssuanceService {
	return &IssuanceService{
		store:            store,
		directoryService: directoryService,
		logger:           logger,
	}
}

func (s *IssuanceService) GetIssuance(ctx context.Context, q types.TableQuery) ([]dto.IssuanceDTO, types.Pagination, error) {
	page, pagination := tableview.Apply(s.store.ListIssuance(), q, "issue_date", time.Now())
	out := make([]dto.IssuanceDTO, len(page))
	for i, r := range page {
		out[i] = toIssuanceDTO(r, s.directoryService)
	}
	return out, pagination, nil
}

func (s *IssuanceService) FindIssuance(ctx context.Context, id uint64) (*dto.IssuanceDTO, error) {
	r, err := s.store.FindIssuance(id)
	if err != nil {
		return nil, err
	}
	d := toIssuanceDTO(*r, s.directoryService)
	return &d, nil
}

// CreateIssuance — пряме створення запису видачі повз погодження
// (наприклад, техніка вже на руках). Статус завжди "На видачу",
// дата видачі — передана клієнтом або сьогоднішня.
func (s *IssuanceService) CreateIssuance(ctx context.Context, payload dto.CreateIssuanceDTO) (*dto.IssuanceDTO, error) {
	issueDate := payload.IssueDate
	if issueDate == "" {
		issueDate = utils.Today()
	}

	created := s.store.CreateIssuance(entities.IssuanceRecord{
		NomenclatureID: payload.NomenclatureID,
		TypeID:         payload.TypeID,
		DepartmentID:   payload.DepartmentID,
		LocationID:     payload.LocationID,
		Quantity:       payload.Quantity,
		Model:          payload.Model,
		SerialNumber:   payload.SerialNumber,
		FullName:       payload.FullName,
		RankID:         payload.RankID,
		Position:       payload.Position,
		Mobile:         payload.Mobile,
		RequestNumber:  newRequestNumber(),
		IssueDate:      issueDate,
		Status:         constants.IssuanceStatusPending,
		Notes:          payload.Notes,
	})

	s.logger.Info("створено запис видачі",
		zap.Uint64("id", created.ID),
		zap.String("request_number", created.RequestNumber),
	)
	d := toIssuanceDTO(created, s.directoryService)
	return &d, nil
}

// UpdateIssuance оновлює запис на місці. Перехід статусу тут дозволений
// (перелік фіксований), але дата видачі при цьому оновлюється так само,
// як у явній дії зміни статусу.
func (s *IssuanceService) UpdateIssuance(ctx context.Context, id uint64, payload dto.UpdateIssuanceDTO) (*dto.IssuanceDTO, error) {
	existing, err := s.store.FindIssuance(id)
	if err != nil {
		return nil, err
	}

	record := entities.IssuanceRecord{
		ID:             id,
		NomenclatureID: payload.NomenclatureID,
		TypeID:         payload.TypeID,
		DepartmentID:   payload.DepartmentID,
		LocationID:     payload.LocationID,
		Quantity:       payload.Quantity,
		Model:          payload.Model,
		SerialNumber:   payload.SerialNumber,
		FullName:       payload.FullName,
		RankID:         payload.RankID,
		Position:       payload.Position,
		Mobile:         payload.Mobile,
		RequestNumber:  existing.RequestNumber,
		IssueDate:      existing.IssueDate,
		Status:         existing.Status,
		Notes:          payload.Notes,
	}

	if payload.IssueDate != "" {
		record.IssueDate = payload.IssueDate
	}

	if payload.Status != "" && payload.Status != existing.Status {
		if !constants.IsValidIssuanceStatus(payload.Status) {
			return nil, apperrors.ErrUnknownStatus
		}
		record.Status = payload.Status
		record.IssueDate = utils.Today()
	}

	if err := s.store.UpdateIssuance(id, record); err != nil {
		return nil, err
	}
	return s.FindIssuance(ctx, id)
}

func (s *IssuanceService) DeleteIssuance(ctx context.Context, id uint64, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	if err := s.store.DeleteIssuance(id); err != nil {
		return err
	}
	s.logger.Info("видалено запис видачі", zap.Uint64("id", id))
	return nil
}
