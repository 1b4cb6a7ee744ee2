// Файл: pkg/constants/constants.go
package constants

//============== ДОВІДНИКИ ==============

// DirectoryKind визначає тип довідника.
type DirectoryKind string

const (
	DirectoryNomenclature DirectoryKind = "nomenclature"
	DirectoryType         DirectoryKind = "type"
	DirectoryDepartment   DirectoryKind = "department"
	DirectoryRank         DirectoryKind = "rank"
	DirectoryLocation     DirectoryKind = "location"
)

func (k DirectoryKind) String() string {
	return string(k)
}

// DirectoryKinds — усі п'ять довідників системи.
var DirectoryKinds = []DirectoryKind{
	DirectoryNomenclature,
	DirectoryType,
	DirectoryDepartment,
	DirectoryRank,
	DirectoryLocation,
}

//============== КОЛЕКЦІЇ ЗАПИСІВ ==============

const (
	CollectionNeeds    = "needs"
	CollectionIssuance = "issuance"
	CollectionRejected = "rejected"
)

//============== КЛЮЧІ НАЛАШТУВАНЬ ==============

// Ключі key/value сховища налаштувань. Єдине, що переживає
// перезапуск процесу (за наявності Redis).
const (
	// Поточний швидкий фільтр за періодом. Формат: period_filter -> "week"
	PrefKeyPeriodFilter = "period_filter"

	// Поточний фільтр за локацією. Формат: location_filter -> "3" (0 = всі)
	PrefKeyLocationFilter = "location_filter"

	// Видимі колонки таблиці. Формат: columns:<collection> -> JSON-список ключів
	PrefKeyColumns = "columns:%s"
)

//============== ДАТИ ==============

// DateLayout — єдиний формат дат у системі: дд.мм.рррр.
// Фільтри та сортування не приймають ISO чи локальні варіанти.
const DateLayout = "02.01.2006"
