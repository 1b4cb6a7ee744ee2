package entities

import "strconv"

// IssuanceRecord — запис про видачу техніки: вже видану або в черзі на видачу.
type IssuanceRecord struct {
	ID             uint64 `json:"id"`
	NomenclatureID uint64 `json:"nomenclature_id"`
	TypeID         uint64 `json:"type_id"`
	DepartmentID   uint64 `json:"department_id"`
	LocationID     uint64 `json:"location_id"`
	Quantity       int    `json:"quantity"`

	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`

	// Отримувач
	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Position string `json:"position"`
	Mobile   string `json:"mobile"`

	RequestNumber string `json:"request_number"`
	IssueDate     string `json:"issue_date"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (r IssuanceRecord) TableRow() map[string]string {
	return map[string]string{
		"id":              strconv.FormatUint(r.ID, 10),
		"nomenclature_id": strconv.FormatUint(r.NomenclatureID, 10),
		"type_id":         strconv.FormatUint(r.TypeID, 10),
		"department_id":   strconv.FormatUint(r.DepartmentID, 10),
		"location_id":     strconv.FormatUint(r.LocationID, 10),
		"quantity":        strconv.Itoa(r.Quantity),
		"model":           r.Model,
		"serial_number":   r.SerialNumber,
		"full_name":       r.FullName,
		"rank_id":         strconv.FormatUint(r.RankID, 10),
		"position":        r.Position,
		"mobile":          r.Mobile,
		"request_number":  r.RequestNumber,
		"issue_date":      r.IssueDate,
		"status":          r.Status,
		"notes":           r.Notes,
	}
}
