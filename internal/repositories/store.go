package repositories

import (
	"sync"

	"equipment-admin/internal/entities"
	apperrors "equipment-admin/pkg/errors"
)

// RecordStoreInterface — єдина поверхня мутацій над трьома колекціями.
// Переміщення між колекціями виконуються тільки сервісом життєвого циклу.
type RecordStoreInterface interface {
	ListNeeds() []entities.NeedRecord
	FindNeed(id uint64) (*entities.NeedRecord, error)
	CreateNeed(n entities.NeedRecord) entities.NeedRecord
	UpdateNeed(id uint64, n entities.NeedRecord) error
	DeleteNeed(id uint64) error

	ListIssuance() []entities.IssuanceRecord
	FindIssuance(id uint64) (*entities.IssuanceRecord, error)
	CreateIssuance(r entities.IssuanceRecord) entities.IssuanceRecord
	UpdateIssuance(id uint64, r entities.IssuanceRecord) error
	DeleteIssuance(id uint64) error

	ListRejected() []entities.RejectedRecord
	FindRejected(id uint64) (*entities.RejectedRecord, error)
	CreateRejected(r entities.RejectedRecord) entities.RejectedRecord
	UpdateRejected(id uint64, r entities.RejectedRecord) error
	DeleteRejected(id uint64) error

	MoveNeedToIssuance(needID uint64, transform func(entities.NeedRecord) entities.IssuanceRecord) (*entities.IssuanceRecord, error)
	MoveNeedToRejected(needID uint64, transform func(entities.NeedRecord) entities.RejectedRecord) (*entities.RejectedRecord, error)
	MoveRejectedToNeed(rejectedID uint64, transform func(entities.RejectedRecord) entities.NeedRecord) (*entities.NeedRecord, error)
	MoveRejectedToIssuance(rejectedID uint64, transform func(entities.RejectedRecord) entities.IssuanceRecord) (*entities.IssuanceRecord, error)
}

// RecordStore тримає всі три колекції у пам'яті процесу. Ідентифікатори
// видаються при створенні і ніколи не перевикористовуються. Стан живе
// рівно стільки, скільки процес: перезапуск повертає посівні дані.
type RecordStore struct {
	mu sync.RWMutex

	needs    []entities.NeedRecord
	issuance []entities.IssuanceRecord
	rejected []entities.RejectedRecord

	nextNeedID     uint64
	nextIssuanceID uint64
	nextRejectedID uint64
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		nextNeedID:     1,
		nextIssuanceID: 1,
		nextRejectedID: 1,
	}
}

// --- Запити на потребу ---

func (s *RecordStore) ListNeeds() []entities.NeedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.NeedRecord, len(s.needs))
	copy(out, s.needs)
	return out
}

func (s *RecordStore) FindNeed(id uint64) (*entities.NeedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.needs {
		if n.ID == id {
			found := n
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) CreateNeed(n entities.NeedRecord) entities.NeedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextNeedID
	s.nextNeedID++
	s.needs = append(s.needs, n)
	return n
}

func (s *RecordStore) UpdateNeed(id uint64, n entities.NeedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.needs {
		if s.needs[i].ID == id {
			n.ID = id
			s.needs[i] = n
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *RecordStore) DeleteNeed(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !removeNeed(&s.needs, id) {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Видача ---

func (s *RecordStore) ListIssuance() []entities.IssuanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.IssuanceRecord, len(s.issuance))
	copy(out, s.issuance)
	return out
}

func (s *RecordStore) FindIssuance(id uint64) (*entities.IssuanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.issuance {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) CreateIssuance(r entities.IssuanceRecord) entities.IssuanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertIssuance(r)
}

func (s *RecordStore) UpdateIssuance(id uint64, r entities.IssuanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.issuance {
		if s.issuance[i].ID == id {
			r.ID = id
			s.issuance[i] = r
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *RecordStore) DeleteIssuance(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !removeIssuance(&s.issuance, id) {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Відхилені ---

func (s *RecordStore) ListRejected() []entities.RejectedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.RejectedRecord, len(s.rejected))
	copy(out, s.rejected)
	return out
}

func (s *RecordStore) FindRejected(id uint64) (*entities.RejectedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rejected {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) CreateRejected(r entities.RejectedRecord) entities.RejectedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertRejected(r)
}

func (s *RecordStore) UpdateRejected(id uint64, r entities.RejectedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rejected {
		if s.rejected[i].ID == id {
			r.ID = id
			s.rejected[i] = r
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *RecordStore) DeleteRejected(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !removeRejected(&s.rejected, id) {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Переміщення між колекціями ---
// Видалення з джерела та вставка у призначення відбуваються під одним
// блокуванням: запис не може опинитися в обох колекціях або в жодній.

func (s *RecordStore) MoveNeedToIssuance(needID uint64, transform func(entities.NeedRecord) entities.IssuanceRecord) (*entities.IssuanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfNeed(s.needs, needID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	source := s.needs[idx]
	s.needs = append(s.needs[:idx], s.needs[idx+1:]...)

	created := s.insertIssuance(transform(source))
	return &created, nil
}

func (s *RecordStore) MoveNeedToRejected(needID uint64, transform func(entities.NeedRecord) entities.RejectedRecord) (*entities.RejectedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfNeed(s.needs, needID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	source := s.needs[idx]
	s.needs = append(s.needs[:idx], s.needs[idx+1:]...)

	created := s.insertRejected(transform(source))
	return &created, nil
}

func (s *RecordStore) MoveRejectedToNeed(rejectedID uint64, transform func(entities.RejectedRecord) entities.NeedRecord) (*entities.NeedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfRejected(s.rejected, rejectedID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	source := s.rejected[idx]
	s.rejected = append(s.rejected[:idx], s.rejected[idx+1:]...)

	created := transform(source)
	created.ID = s.nextNeedID
	s.nextNeedID++
	s.needs = append(s.needs, created)
	return &created, nil
}

func (s *RecordStore) MoveRejectedToIssuance(rejectedID uint64, transform func(entities.RejectedRecord) entities.IssuanceRecord) (*entities.IssuanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfRejected(s.rejected, rejectedID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	source := s.rejected[idx]
	s.rejected = append(s.rejected[:idx], s.rejected[idx+1:]...)

	created := s.insertIssuance(transform(source))
	return &created, nil
}

// --- Внутрішні помічники (викликаються під узятим блокуванням) ---

func (s *RecordStore) insertIssuance(r entities.IssuanceRecord) entities.IssuanceRecord {
	r.ID = s.nextIssuanceID
	s.nextIssuanceID++
	s.issuance = append(s.issuance, r)
	return r
}

func (s *RecordStore) insertRejected(r entities.RejectedRecord) entities.RejectedRecord {
	r.ID = s.nextRejectedID
	s.nextRejectedID++
	s.rejected = append(s.rejected, r)
	return r
}

func indexOfNeed(list []entities.NeedRecord, id uint64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfRejected(list []entities.RejectedRecord, id uint64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func removeNeed(list *[]entities.NeedRecord, id uint64) bool {
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func removeIssuance(list *[]entities.IssuanceRecord, id uint64) bool {
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func removeRejected(list *[]entities.RejectedRecord, id uint64) bool {
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
