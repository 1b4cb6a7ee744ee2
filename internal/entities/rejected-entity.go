package entities

import "strconv"

// RejectedRecord — термінальний запис про відхилений запит.
// Статус завжди "Відхилено", notes — обов'язкова причина відмови.
type RejectedRecord struct {
	ID             uint64 `json:"id"`
	NomenclatureID uint64 `json:"nomenclature_id"`
	TypeID         uint64 `json:"type_id"`
	DepartmentID   uint64 `json:"department_id"`
	LocationID     uint64 `json:"location_id"`
	Quantity       int    `json:"quantity"`

	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Position string `json:"position"`
	Mobile   string `json:"mobile"`

	Status       string `json:"status"`
	Notes        string `json:"notes"`
	RejectedDate string `json:"rejected_date"`
}

func (r RejectedRecord) TableRow() map[string]string {
	return map[string]string{
		"id":              strconv.FormatUint(r.ID, 10),
		"nomenclature_id": strconv.FormatUint(r.NomenclatureID, 10),
		"type_id":         strconv.FormatUint(r.TypeID, 10),
		"department_id":   strconv.FormatUint(r.DepartmentID, 10),
		"location_id":     strconv.FormatUint(r.LocationID, 10),
		"quantity":        strconv.Itoa(r.Quantity),
		"full_name":       r.FullName,
		"rank_id":         strconv.FormatUint(r.RankID, 10),
		"position":        r.Position,
		"mobile":          r.Mobile,
		"status":          r.Status,
		"notes":           r.Notes,
		"rejected_date":   r.RejectedDate,
	}
}
