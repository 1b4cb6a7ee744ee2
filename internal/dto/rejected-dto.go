package dto

// RestoreRejectedDTO: повернення відхиленого запису назад у роботу —
// у запити на потребу або одразу в чергу на видачу.
type RestoreRejectedDTO struct {
	Confirmed bool   `json:"confirmed"`
	Notes     string `json:"notes"`
}

type RejectedDTO struct {
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

	Status       string `json:"status"`
	Notes        string `json:"notes"`
	RejectedDate string `json:"rejected_date"`
}
