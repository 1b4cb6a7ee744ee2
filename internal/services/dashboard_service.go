package services

import (
	"context"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetCounters(ctx context.Context) (*dto.DashboardDTO, error)
}

// DashboardService рахує лічильники шапки панелі.
type DashboardService struct {
	store  repositories.RecordStoreInterface
	logger *zap.Logger
}

func NewDashboardService(store repositories.RecordStoreInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: store, logger: logger}
}

func (s *DashboardService) GetCounters(ctx context.Context) (*dto.DashboardDTO, error) {
	counters := &dto.DashboardDTO{
		PendingNeeds: len(s.store.ListNeeds()),
		Rejected:     len(s.store.ListRejected()),
	}

	// "Видано" — термінальний статус, у черзі на видачу не рахується.
	for _, r := range s.store.ListIssuance() {
		if r.Status != constants.IssuanceStatusIssued {
			counters.PendingIssuance++
		}
	}
	return counters, nil
}
