package services

import (
	"context"
	"strings"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/entities"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
	"equipment-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleServiceInterface — всі переходи записів між колекціями та
// просування статусів видачі. Єдиний клієнт move-примітивів сховища.
type LifecycleServiceInterface interface {
	Approve(ctx context.Context, needID uint64, confirmed bool) (*dto.IssuanceDTO, error)
	Reject(ctx context.Context, needID uint64, reason string, confirmed bool) (*dto.RejectedDTO, error)
	Issue(ctx context.Context, issuanceID uint64, confirmed bool) (*dto.IssuanceDTO, error)
	SetIssuanceStatus(ctx context.Context, issuanceID uint64, status string, confirmed bool) (*dto.IssuanceDTO, error)
	ReturnToPending(ctx context.Context, issuanceID uint64, notes string, confirmed bool) (*dto.IssuanceDTO, error)
	RestoreToNeed(ctx context.Context, rejectedID uint64, notes string, confirmed bool) (*dto.NeedDTO, error)
	RestoreToIssuance(ctx context.Context, rejectedID uint64, notes string, confirmed bool) (*dto.IssuanceDTO, error)
}

type LifecycleService struct {
	store            repositories.RecordStoreInterface
	directoryService DirectoryServiceInterface
	logger           *zap.Logger
}

func NewLifecycleService(
	store repositories.RecordStoreInterface,
	directoryService DirectoryServiceInterface,
	logger *zap.Logger,
) *LifecycleService {
	return &LifecycleService{
		store:            store,
		directoryService: directoryService,
		logger:           logger,
	}
}

// newRequestNumber генерує свіжий номер заявки на видачу.
func newRequestNumber() string {
	return "В-" + strings.ToUpper(uuid.NewString()[:8])
}

// Approve погоджує запит: запис зникає з потреб і рівно один новий
// запис з'являється у черзі на видачу зі статусом "На видачу".
// Дані отримувача копіюються з даних заявника.
func (s *LifecycleService) Approve(ctx context.Context, needID uint64, confirmed bool) (*dto.IssuanceDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	created, err := s.store.MoveNeedToIssuance(needID, func(n entities.NeedRecord) entities.IssuanceRecord {
		return entities.IssuanceRecord{
			NomenclatureID: n.NomenclatureID,
			TypeID:         n.TypeID,
			DepartmentID:   n.DepartmentID,
			LocationID:     n.LocationID,
			Quantity:       n.Quantity,
			FullName:       n.FullName,
			RankID:         n.RankID,
			Position:       n.Position,
			Mobile:         n.Mobile,
			RequestNumber:  newRequestNumber(),
			IssueDate:      utils.Today(),
			Status:         constants.IssuanceStatusPending,
			Notes:          n.Notes,
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("запит погоджено",
		zap.Uint64("need_id", needID),
		zap.Uint64("issuance_id", created.ID),
		zap.String("request_number", created.RequestNumber),
	)
	d := toIssuanceDTO(*created, s.directoryService)
	return &d, nil
}

// Reject відхиляє запит із обов'язковою причиною: запис зникає з потреб
// і з'являється у журналі відхилених зі статусом "Відхилено".
func (s *LifecycleService) Reject(ctx context.Context, needID uint64, reason string, confirmed bool) (*dto.RejectedDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.ErrEmptyRejectReason
	}

	created, err := s.store.MoveNeedToRejected(needID, func(n entities.NeedRecord) entities.RejectedRecord {
		return entities.RejectedRecord{
			NomenclatureID: n.NomenclatureID,
			TypeID:         n.TypeID,
			DepartmentID:   n.DepartmentID,
			LocationID:     n.LocationID,
			Quantity:       n.Quantity,
			FullName:       n.FullName,
			RankID:         n.RankID,
			Position:       n.Position,
			Mobile:         n.Mobile,
			Status:         constants.NeedStatusRejected,
			Notes:          reason,
			RejectedDate:   utils.Today(),
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("запит відхилено",
		zap.Uint64("need_id", needID),
		zap.Uint64("rejected_id", created.ID),
		zap.String("reason", reason),
	)
	d := toRejectedDTO(*created, s.directoryService)
	return &d, nil
}

// Issue позначає видачу виконаною: статус "Видано", дата видачі
// оновлюється. Термінальний для процесу, але подальші правки
// не блокуються.
func (s *LifecycleService) Issue(ctx context.Context, issuanceID uint64, confirmed bool) (*dto.IssuanceDTO, error) {
	return s.SetIssuanceStatus(ctx, issuanceID, constants.IssuanceStatusIssued, confirmed)
}

// SetIssuanceStatus — прямий перехід у будь-який статус переліку.
// Таблиці дозволених переходів немає.
func (s *LifecycleService) SetIssuanceStatus(ctx context.Context, issuanceID uint64, status string, confirmed bool) (*dto.IssuanceDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}
	if !constants.IsValidIssuanceStatus(status) {
		return nil, apperrors.ErrUnknownStatus
	}

	record, err := s.store.FindIssuance(issuanceID)
	if err != nil {
		return nil, err
	}
	record.Status = status
	record.IssueDate = utils.Today()
	if err := s.store.UpdateIssuance(issuanceID, *record); err != nil {
		return nil, err
	}

	s.logger.Info("змінено статус видачі",
		zap.Uint64("id", issuanceID),
		zap.String("status", status),
	)
	d := toIssuanceDTO(*record, s.directoryService)
	return &d, nil
}

// ReturnToPending повертає видану чи призупинену техніку назад
// у чергу "На видачу".
func (s *LifecycleService) ReturnToPending(ctx context.Context, issuanceID uint64, notes string, confirmed bool) (*dto.IssuanceDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	record, err := s.store.FindIssuance(issuanceID)
	if err != nil {
		return nil, err
	}
	record.Status = constants.IssuanceStatusPending
	record.IssueDate = utils.Today()
	if notes != "" {
		record.Notes = notes
	}
	if err := s.store.UpdateIssuance(issuanceID, *record); err != nil {
		return nil, err
	}

	s.logger.Info("техніку повернуто в чергу на видачу", zap.Uint64("id", issuanceID))
	d := toIssuanceDTO(*record, s.directoryService)
	return &d, nil
}

// RestoreToNeed повертає відхилений запис у запити на потребу
// зі статусом "На погодженні" та свіжою датою запиту.
func (s *LifecycleService) RestoreToNeed(ctx context.Context, rejectedID uint64, notes string, confirmed bool) (*dto.NeedDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	created, err := s.store.MoveRejectedToNeed(rejectedID, func(r entities.RejectedRecord) entities.NeedRecord {
		n := entities.NeedRecord{
			NomenclatureID: r.NomenclatureID,
			TypeID:         r.TypeID,
			DepartmentID:   r.DepartmentID,
			LocationID:     r.LocationID,
			Quantity:       r.Quantity,
			FullName:       r.FullName,
			RankID:         r.RankID,
			Position:       r.Position,
			Mobile:         r.Mobile,
			Status:         constants.NeedStatusPending,
			RequestDate:    utils.Today(),
			Notes:          r.Notes,
		}
		if notes != "" {
			n.Notes = notes
		}
		return n
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("відхилений запис повернуто у потреби",
		zap.Uint64("rejected_id", rejectedID),
		zap.Uint64("need_id", created.ID),
	)
	d := toNeedDTO(*created, s.directoryService)
	return &d, nil
}

// RestoreToIssuance повертає відхилений запис одразу в чергу на видачу.
func (s *LifecycleService) RestoreToIssuance(ctx context.Context, rejectedID uint64, notes string, confirmed bool) (*dto.IssuanceDTO, error) {
	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	created, err := s.store.MoveRejectedToIssuance(rejectedID, func(r entities.RejectedRecord) entities.IssuanceRecord {
		rec := entities.IssuanceRecord{
			NomenclatureID: r.NomenclatureID,
			TypeID:         r.TypeID,
			DepartmentID:   r.DepartmentID,
			LocationID:     r.LocationID,
			Quantity:       r.Quantity,
			FullName:       r.FullName,
			RankID:         r.RankID,
			Position:       r.Position,
			Mobile:         r.Mobile,
			RequestNumber:  newRequestNumber(),
			IssueDate:      utils.Today(),
			Status:         constants.IssuanceStatusPending,
			Notes:          r.Notes,
		}
		if notes != "" {
			rec.Notes = notes
		}
		return rec
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("відхилений запис повернуто у чергу на видачу",
		zap.Uint64("rejected_id", rejectedID),
		zap.Uint64("issuance_id", created.ID),
	)
	d := toIssuanceDTO(*created, s.directoryService)
	return &d, nil
}
