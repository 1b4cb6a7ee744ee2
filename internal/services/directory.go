package services

import (
	"context"

	"equipment-admin/internal/dto"
	"equipment-admin/internal/entities"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"

	"go.uber.org/zap"
)

type DirectoryServiceInterface interface {
	List(ctx context.Context, kind constants.DirectoryKind) ([]dto.DirectoryItemDTO, error)
	Find(ctx context.Context, kind constants.DirectoryKind, id uint64) (*dto.DirectoryItemDTO, error)
	Create(ctx context.Context, kind constants.DirectoryKind, payload dto.CreateDirectoryItemDTO) (*dto.DirectoryItemDTO, error)
	Update(ctx context.Context, kind constants.DirectoryKind, id uint64, payload dto.UpdateDirectoryItemDTO) (*dto.DirectoryItemDTO, error)
	Delete(ctx context.Context, kind constants.DirectoryKind, id uint64, confirmed bool) error
	RequiresAccounts(ctx context.Context, nomenclatureID, typeID uint64) bool
	ResolveName(kind constants.DirectoryKind, id uint64) string
}

type DirectoryService struct {
	directoryRepo repositories.DirectoryRepositoryInterface
	logger        *zap.Logger
}

func NewDirectoryService(directoryRepo repositories.DirectoryRepositoryInterface, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{directoryRepo: directoryRepo, logger: logger}
}

func (s *DirectoryService) List(ctx context.Context, kind constants.DirectoryKind) ([]dto.DirectoryItemDTO, error) {
	items := s.directoryRepo.List(kind)
	out := make([]dto.DirectoryItemDTO, len(items))
	for i, item := range items {
		out[i] = toDirectoryDTO(item)
	}
	return out, nil
}

func (s *DirectoryService) Find(ctx context.Context, kind constants.DirectoryKind, id uint64) (*dto.DirectoryItemDTO, error) {
	item, err := s.directoryRepo.Find(kind, id)
	if err != nil {
		return nil, err
	}
	d := toDirectoryDTO(*item)
	return &d, nil
}

func (s *DirectoryService) Create(ctx context.Context, kind constants.DirectoryKind, payload dto.CreateDirectoryItemDTO) (*dto.DirectoryItemDTO, error) {
	item := entities.DirectoryItem{Name: payload.Name}

	// Класифікація виводиться з назви один раз — тут, при створенні.
	switch kind {
	case constants.DirectoryNomenclature:
		item.IsComputerClass = constants.IsComputerClassName(payload.Name)
	case constants.DirectoryType:
		item.IsWorkstation = constants.IsWorkstationTypeName(payload.Name)
	}

	created := s.directoryRepo.Create(kind, item)
	s.logger.Info("створено елемент довідника",
		zap.String("kind", kind.String()),
		zap.Uint64("id", created.ID),
		zap.String("name", created.Name),
	)
	d := toDirectoryDTO(created)
	return &d, nil
}

func (s *DirectoryService) Update(ctx context.Context, kind constants.DirectoryKind, id uint64, payload dto.UpdateDirectoryItemDTO) (*dto.DirectoryItemDTO, error) {
	if err := s.directoryRepo.Update(kind, id, entities.DirectoryItem{Name: payload.Name}); err != nil {
		return nil, err
	}
	return s.Find(ctx, kind, id)
}

// Delete видаляє елемент довідника. Посилання з доменних записів не
// перевіряються: записи з "висячим" id показуватимуть сирий id.
func (s *DirectoryService) Delete(ctx context.Context, kind constants.DirectoryKind, id uint64, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrNotConfirmed
	}
	return s.directoryRepo.Delete(kind, id)
}

// RequiresAccounts: запит потребує облікових записів, коли номенклатура —
// комп'ютерна техніка, а тип — робоче місце. Невідомі id класифікацію
// не проходять.
func (s *DirectoryService) RequiresAccounts(ctx context.Context, nomenclatureID, typeID uint64) bool {
	nom, err := s.directoryRepo.Find(constants.DirectoryNomenclature, nomenclatureID)
	if err != nil || !nom.IsComputerClass {
		return false
	}
	typ, err := s.directoryRepo.Find(constants.DirectoryType, typeID)
	if err != nil {
		return false
	}
	return typ.IsWorkstation
}

func (s *DirectoryService) ResolveName(kind constants.DirectoryKind, id uint64) string {
	return s.directoryRepo.ResolveName(kind, id)
}

func toDirectoryDTO(item entities.DirectoryItem) dto.DirectoryItemDTO {
	return dto.DirectoryItemDTO{
		ID:              item.ID,
		Name:            item.Name,
		IsComputerClass: item.IsComputerClass,
		IsWorkstation:   item.IsWorkstation,
	}
}
