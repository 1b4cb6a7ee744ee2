package entities

import (
	"strconv"
	"strings"
)

// Account — обліковий запис користувача для комп'ютерної техніки класу
// "робоче місце". Створюється по одному на кожну одиницю кількості.
type Account struct {
	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

// NeedRecord — запит на потребу в техніці, що чекає на рішення.
type NeedRecord struct {
	ID             uint64 `json:"id"`
	NomenclatureID uint64 `json:"nomenclature_id"`
	TypeID         uint64 `json:"type_id"`
	DepartmentID   uint64 `json:"department_id"`
	LocationID     uint64 `json:"location_id"`
	Quantity       int    `json:"quantity"`

	// Заявник
	FullName string `json:"full_name"`
	RankID   uint64 `json:"rank_id"`
	Position string `json:"position"`
	Mobile   string `json:"mobile"`

	// МВО. IsFrtCp == true — МВО збігається із заявником, поля нижче
	// на момент подання перезаписуються полями заявника.
	IsFrtCp     bool   `json:"is_frt_cp"`
	MvoFullName string `json:"mvo_full_name"`
	MvoRankID   uint64 `json:"mvo_rank_id"`
	MvoPosition string `json:"mvo_position"`
	MvoMobile   string `json:"mvo_mobile"`

	RequestDate string    `json:"request_date"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	Accounts    []Account `json:"accounts,omitempty"`
}

// TableRow подає запис для табличного конвеєра: пошук і сортування
// працюють над рядковою формою всіх полів.
func (n NeedRecord) TableRow() map[string]string {
	return map[string]string{
		"id":              strconv.FormatUint(n.ID, 10),
		"nomenclature_id": strconv.FormatUint(n.NomenclatureID, 10),
		"type_id":         strconv.FormatUint(n.TypeID, 10),
		"department_id":   strconv.FormatUint(n.DepartmentID, 10),
		"location_id":     strconv.FormatUint(n.LocationID, 10),
		"quantity":        strconv.Itoa(n.Quantity),
		"full_name":       n.FullName,
		"rank_id":         strconv.FormatUint(n.RankID, 10),
		"position":        n.Position,
		"mobile":          n.Mobile,
		"is_frt_cp":       strconv.FormatBool(n.IsFrtCp),
		"mvo_full_name":   n.MvoFullName,
		"mvo_rank_id":     strconv.FormatUint(n.MvoRankID, 10),
		"mvo_position":    n.MvoPosition,
		"mvo_mobile":      n.MvoMobile,
		"request_date":    n.RequestDate,
		"status":          n.Status,
		"notes":           n.Notes,
		"accounts":        n.accountNames(),
	}
}

// accountNames подає власників облікових записів одним рядком, щоб
// пошук знаходив запит за ПІБ користувача техніки.
func (n NeedRecord) accountNames() string {
	names := make([]string, len(n.Accounts))
	for i, a := range n.Accounts {
		names[i] = a.FullName
	}
	return strings.Join(names, ", ")
}
