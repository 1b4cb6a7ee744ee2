package repositories

import (
	"strconv"
	"sync"

	"equipment-admin/internal/entities"
	"equipment-admin/pkg/constants"
	apperrors "equipment-admin/pkg/errors"
)

type DirectoryRepositoryInterface interface {
	List(kind constants.DirectoryKind) []entities.DirectoryItem
	Find(kind constants.DirectoryKind, id uint64) (*entities.DirectoryItem, error)
	Create(kind constants.DirectoryKind, item entities.DirectoryItem) entities.DirectoryItem
	Update(kind constants.DirectoryKind, id uint64, item entities.DirectoryItem) error
	Delete(kind constants.DirectoryKind, id uint64) error
	ResolveName(kind constants.DirectoryKind, id uint64) string
}

// DirectoryRepository — п'ять довідників id -> назва у пам'яті.
// Цілісність посилань із домовими записами не перевіряється: видалення
// елемента, на який хтось посилається, лишає "висячий" id, а показ
// відкочується до сирого ідентифікатора.
type DirectoryRepository struct {
	mu      sync.RWMutex
	items   map[constants.DirectoryKind][]entities.DirectoryItem
	nextIDs map[constants.DirectoryKind]uint64
}

func NewDirectoryRepository() *DirectoryRepository {
	items := make(map[constants.DirectoryKind][]entities.DirectoryItem)
	nextIDs := make(map[constants.DirectoryKind]uint64)
	for _, kind := range constants.DirectoryKinds {
		items[kind] = nil
		nextIDs[kind] = 1
	}
	return &DirectoryRepository{items: items, nextIDs: nextIDs}
}

func (r *DirectoryRepository) List(kind constants.DirectoryKind) []entities.DirectoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.DirectoryItem, len(r.items[kind]))
	copy(out, r.items[kind])
	return out
}

func (r *DirectoryRepository) Find(kind constants.DirectoryKind, id uint64) (*entities.DirectoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items[kind] {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *DirectoryRepository) Create(kind constants.DirectoryKind, item entities.DirectoryItem) entities.DirectoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextIDs[kind]
	r.nextIDs[kind]++
	r.items[kind] = append(r.items[kind], item)
	return item
}

func (r *DirectoryRepository) Update(kind constants.DirectoryKind, id uint64, item entities.DirectoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[kind]
	for i := range list {
		if list[i].ID == id {
			item.ID = id
			// Прапорці класифікації визначені при створенні:
			// перейменування їх не перераховує.
			item.IsComputerClass = list[i].IsComputerClass
			item.IsWorkstation = list[i].IsWorkstation
			list[i] = item
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *DirectoryRepository) Delete(kind constants.DirectoryKind, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[kind]
	for i := range list {
		if list[i].ID == id {
			r.items[kind] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// ResolveName повертає назву елемента, а якщо id вже нікуди не вказує —
// сам id у вигляді рядка.
func (r *DirectoryRepository) ResolveName(kind constants.DirectoryKind, id uint64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items[kind] {
		if item.ID == id {
			return item.Name
		}
	}
	return strconv.FormatUint(id, 10)
}
