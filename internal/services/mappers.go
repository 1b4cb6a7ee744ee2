package services

import (
	"equipment-admin/internal/dto"
	"equipment-admin/internal/entities"
	"equipment-admin/pkg/constants"
)

// nameResolver — мінімум, який потрібен мапперам від довідників.
type nameResolver interface {
	ResolveName(kind constants.DirectoryKind, id uint64) string
}

func toAccountDTOs(accounts []entities.Account) []dto.AccountDTO {
	if len(accounts) == 0 {
		return nil
	}
	out := make([]dto.AccountDTO, len(accounts))
	for i, a := range accounts {
		out[i] = dto.AccountDTO{
			FullName: a.FullName,
			RankID:   a.RankID,
			Position: a.Position,
			Phone:    a.Phone,
		}
	}
	return out
}

func toAccountEntities(accounts []dto.AccountDTO) []entities.Account {
	if len(accounts) == 0 {
		return nil
	}
	out := make([]entities.Account, len(accounts))
	for i, a := range accounts {
		out[i] = entities.Account{
			FullName: a.FullName,
			RankID:   a.RankID,
			Position: a.Position,
			Phone:    a.Phone,
		}
	}
	return out
}

func toNeedDTO(n entities.NeedRecord, r nameResolver) dto.NeedDTO {
	return dto.NeedDTO{
		ID:             n.ID,
		NomenclatureID: n.NomenclatureID,
		Nomenclature:   r.ResolveName(constants.DirectoryNomenclature, n.NomenclatureID),
		TypeID:         n.TypeID,
		Type:           r.ResolveName(constants.DirectoryType, n.TypeID),
		DepartmentID:   n.DepartmentID,
		Department:     r.ResolveName(constants.DirectoryDepartment, n.DepartmentID),
		LocationID:     n.LocationID,
		Location:       r.ResolveName(constants.DirectoryLocation, n.LocationID),
		Quantity:       n.Quantity,
		FullName:       n.FullName,
		RankID:         n.RankID,
		Rank:           r.ResolveName(constants.DirectoryRank, n.RankID),
		Position:       n.Position,
		Mobile:         n.Mobile,
		IsFrtCp:        n.IsFrtCp,
		MvoFullName:    n.MvoFullName,
		MvoRankID:      n.MvoRankID,
		MvoPosition:    n.MvoPosition,
		MvoMobile:      n.MvoMobile,
		RequestDate:    n.RequestDate,
		Status:         n.Status,
		Notes:          n.Notes,
		Accounts:       toAccountDTOs(n.Accounts),
	}
}

func toIssuanceDTO(rec entities.IssuanceRecord, r nameResolver) dto.IssuanceDTO {
	return dto.IssuanceDTO{
		ID:             rec.ID,
		NomenclatureID: rec.NomenclatureID,
		Nomenclature:   r.ResolveName(constants.DirectoryNomenclature, rec.NomenclatureID),
		TypeID:         rec.TypeID,
		Type:           r.ResolveName(constants.DirectoryType, rec.TypeID),
		DepartmentID:   rec.DepartmentID,
		Department:     r.ResolveName(constants.DirectoryDepartment, rec.DepartmentID),
		LocationID:     rec.LocationID,
		Location:       r.ResolveName(constants.DirectoryLocation, rec.LocationID),
		Quantity:       rec.Quantity,
		Model:          rec.Model,
		SerialNumber:   rec.SerialNumber,
		FullName:       rec.FullName,
		RankID:         rec.RankID,
		Rank:           r.ResolveName(constants.DirectoryRank, rec.RankID),
		Position:       rec.Position,
		Mobile:         rec.Mobile,
		RequestNumber:  rec.RequestNumber,
		IssueDate:      rec.IssueDate,
		Status:         rec.Status,
		Notes:          rec.Notes,
	}
}

func toRejectedDTO(rec entities.RejectedRecord, r nameResolver) dto.RejectedDTO {
	return dto.RejectedDTO{
		ID:             rec.ID,
		NomenclatureID: rec.NomenclatureID,
		Nomenclature:   r.ResolveName(constants.DirectoryNomenclature, rec.NomenclatureID),
		TypeID:         rec.TypeID,
		Type:           r.ResolveName(constants.DirectoryType, rec.TypeID),
		DepartmentID:   rec.DepartmentID,
		Department:     r.ResolveName(constants.DirectoryDepartment, rec.DepartmentID),
		LocationID:     rec.LocationID,
		Location:       r.ResolveName(constants.DirectoryLocation, rec.LocationID),
		Quantity:       rec.Quantity,
		FullName:       rec.FullName,
		RankID:         rec.RankID,
		Rank:           r.ResolveName(constants.DirectoryRank, rec.RankID),
		Position:       rec.Position,
		Mobile:         rec.Mobile,
		Status:         rec.Status,
		Notes:          rec.Notes,
		RejectedDate:   rec.RejectedDate,
	}
}
