package services

import (
	"context"
	"time"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/repositories"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/tableview"
	"equipment-admin/pkg/types"

	"go.uber.org/zap"
)

type RejectedServiceInterface interface {
	GetRejected(ctx context.Context, q types.TableQuery) ([]dto.RejectedDTO, types.Pagination, error)
	FindRejected(ctx context.Context, id uint64) (*dto.RejectedDTO, error)
	DeleteRejected(ctx context.Context, id uint64, confirmed bool) error
}

// RejectedService — журнал відхилених записів. Створення нових записів тут
// немає: у журнал потрапляють лише через відхилення запиту, а залишають
// його через повернення у роботу (LifecycleService) або видалення.
type RejectedService struct {
	store            repositories.RecordStoreInterface
	directoryService DirectoryServiceInterface
	logger           *zap.Logger
}

func NewRejectedService(
	store repositories.RecordStoreInterface,
	directoryService DirectoryServiceInterface,
	logger *zap.Logger,
) *RejectedService {
	return &RejectedService{
		store:            store,
		directoryService: directoryService,
		logger:           logger,
	}
}

func (s *RejectedService) GetRejected(ctx context.Context, q types.TableQuery) ([]dto.RejectedDTO, types.Pagination, error) {
	page, pagination := tableview.Apply(s.store.ListRejected(), q, "rejected_date", time.Now())
	out := make([]dto.RejectedDTO, len(page))
	for i, r := range page {
		out[i] = toRejectedDTO(r, s.directoryService)
	}
	return out, pagination, nil
}

func (s *RejectedService) FindRejected(ctx context.Context, id uint64) (*dto.RejectedDTO, error) {
	r, err := s.store.FindRejected(id)
	if err != nil {
		return nil, err
	}
	d := toRejectedDTO(*r, s.directoryService)
	return &d, nil
}

func (s *RejectedService) DeleteRejected(ctx context.Context, id uint64, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	if err := s.store.DeleteRejected(id); err != nil {
		return err
	}
	s.logger.Info("видалено запис із журналу відхилених", zap.Uint64("id", id))
	return nil
}
