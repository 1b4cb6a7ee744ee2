package dto

// CreateIssuanceDTO: пряме створення запису видачі (повз погодження).
type CreateIssuanceDTO struct {
	NomenclatureID uint64 `json:"nomenclature_id" validate:"required"`
	TypeID         uint64 `json:"type_id" validate:"required"`
	DepartmentID   uint64 `json:"department_id" validate:"required"`
	LocationID     uint64 `json:"location_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gte=1"`

	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`

	FullName string `json:"full_name" validate:"required"`
	RankID   uint64 `json:"rank_id" validate:"required"`
	Position string `json:"position" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,ua_mobile"`

	// Дата видачі для техніки, що вже на руках. Порожня — сьогодні.
	IssueDate string `json:"issue_date" validate:"omitempty,dmy_date"`

	Notes string `json:"notes"`
}

type UpdateIssuanceDTO struct {
	CreateIssuanceDTO
	Status string `json:"status" validate:"omitempty"`
}

// SetIssuanceStatusDTO: прямий перехід статусу видачі. Таблиці переходів
// немає — будь-який статус досяжний з будь-якого, дата видачі
// оновлюється на кожному переході.
type SetIssuanceStatusDTO struct {
	Confirmed bool   `json:"confirmed"`
	Status    string `json:"status" validate:"required"`
}

// ReturnIssuanceDTO: повернення техніки у чергу на видачу.
type ReturnIssuanceDTO struct {
	Confirmed bool   `json:"confirmed"`
	Notes     string `json:"notes"`
}

type IssuanceDTO struct {
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

	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`

	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Rank     string `json:"rank"`
	Position string `json:"position"`
	Mobile   string `json:"mobile"`

	RequestNumber string `json:"request_number"`
	IssueDate     string `json:"issue_date"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}
