package dto

// AccountDTO — обліковий запис користувача на одиницю техніки.
type AccountDTO struct {
	FullName string `json:"full_name" validate:"required"`
	RankID   uint64 `json:"rank_id"`
	Position string `json:"position"`
	Phone    string `json:"phone" validate:"omitempty,ua_mobile"`
}

// CreateNeedDTO: що клієнт надсилає для створення запиту.
// Поля МВО обов'язкові лише коли МВО не збігається із заявником.
type CreateNeedDTO struct {
	NomenclatureID uint64 `json:"nomenclature_id" validate:"required"`
	TypeID         uint64 `json:"type_id" validate:"required"`
	DepartmentID   uint64 `json:"department_id" validate:"required"`
	LocationID     uint64 `json:"location_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gte=1"`

	FullName string `json:"full_name" validate:"required"`
	RankID   uint64 `json:"rank_id" validate:"required"`
	Position string `json:"position" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,ua_mobile"`

	IsFrtCp     bool   `json:"is_frt_cp"`
	MvoFullName string `json:"mvo_full_name" validate:"required_if=IsFrtCp false"`
	MvoRankID   uint64 `json:"mvo_rank_id" validate:"required_if=IsFrtCp false"`
	MvoPosition string `json:"mvo_position" validate:"required_if=IsFrtCp false"`
	MvoMobile   string `json:"mvo_mobile" validate:"required_if=IsFrtCp false,omitempty,ua_mobile"`

	Notes    string       `json:"notes"`
	Accounts []AccountDTO `json:"accounts" validate:"omitempty,dive"`
}

// UpdateNeedDTO: оновлення запиту на місці. Статуси "Погоджено" та
// "Відхилено" тут не приймаються — для них є окремі дії.
type UpdateNeedDTO struct {
	CreateNeedDTO
	Status string `json:"status" validate:"omitempty"`
}

// RejectNeedDTO: відхилення запиту. Причина обов'язкова.
type RejectNeedDTO struct {
	Confirmed bool   `json:"confirmed"`
	Reason    string `json:"reason" validate:"required"`
}

// ConfirmDTO — явне підтвердження руйнівної дії. Без confirmed=true
// жодна мутація не відбувається.
type ConfirmDTO struct {
	Confirmed bool `json:"confirmed"`
}

// NeedDTO: що сервер віддає клієнту. Поруч з id — розгорнуті назви
// з довідників (або сирий id, якщо елемент довідника видалено).
type NeedDTO struct {
	ID             uint64 `json:"id"`
	NomenclatureID uint64 `json:"nomenclature_id"`
	Nomenclature   string `json:"nomenclature"`
	TypeID         uint64 `json:"type_id"`
	Type           string `json:"type"`
	DepartmentID   uint64 `json:"department_id"`
	Department     string `json:"department"`
	LocationID     uint64 `json:"location_id"`
	Location       string `json:"location"`
	Quantity       int    `json:"quantity"`

	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Rank     string `json:"rank"`
	Position string `json:"position"`
	Mobile   string `json:"mobile"`

	IsFrtCp     bool   `json:"is_frt_cp"`
	MvoFullName string `json:"mvo_full_name"`
	MvoRankID   uint64 `json:"mvo_rank_id"`
	MvoPosition string `json:"mvo_position"`
	MvoMobile   string `json:"mvo_mobile"`

	RequestDate string       `json:"request_date"`
	Status      string       `json:"status"`
	Notes       string       `json:"notes"`
	Accounts    []AccountDTO `json:"accounts,omitempty"`
}
