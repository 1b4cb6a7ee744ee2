package seeders

import (
	"time"

	"equipment-admin/internal/entities"
	"equipment-admin/internal/repositories"
	"equipment-admin/pkg/constants"
	"equipment-admin/pkg/utils"

	"go.uber.org/zap"
)

// Seed наповнює довідники та три колекції посівними даними.
// Викликається на кожному старті процесу: стан записів не переживає
// перезапуск, панель завжди прокидається з цими даними.
func Seed(store repositories.RecordStoreInterface, directoryRepo repositories.DirectoryRepositoryInterface, logger *zap.Logger) {
	logger.Info("Сідер: наповнення довідників")
	seedDirectory(directoryRepo, constants.DirectoryNomenclature, nomenclaturesData)
	seedDirectory(directoryRepo, constants.DirectoryType, typesData)
	seedDirectory(directoryRepo, constants.DirectoryDepartment, departmentsData)
	seedDirectory(directoryRepo, constants.DirectoryRank, ranksData)
	seedDirectory(directoryRepo, constants.DirectoryLocation, locationsData)

	logger.Info("Сідер: наповнення колекцій записів")
	now := time.Now()
	for i, n := range needsData {
		// Дати розкидано по останніх днях, щоб швидкі фільтри мали що показати.
		n.RequestDate = utils.FormatDate(now.AddDate(0, 0, -i))
		store.CreateNeed(n)
	}
	for i, r := range issuanceData {
		r.IssueDate = utils.FormatDate(now.AddDate(0, 0, -i*3))
		store.CreateIssuance(r)
	}
	for i, r := range rejectedData {
		r.RejectedDate = utils.FormatDate(now.AddDate(0, 0, -i-5))
		store.CreateRejected(r)
	}

	logger.Info("Сідер: завершено",
		zap.Int("needs", len(needsData)),
		zap.Int("issuance", len(issuanceData)),
		zap.Int("rejected", len(rejectedData)),
	)
}

func seedDirectory(repo repositories.DirectoryRepositoryInterface, kind constants.DirectoryKind, names []string) {
	for _, name := range names {
		item := entities.DirectoryItem{Name: name}
		switch kind {
		case constants.DirectoryNomenclature:
			item.IsComputerClass = constants.IsComputerClassName(name)
		case constants.DirectoryType:
			item.IsWorkstation = constants.IsWorkstationTypeName(name)
		}
		repo.Create(kind, item)
	}
}
