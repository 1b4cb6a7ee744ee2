package seeders

import "equipment-admin/internal/entities"

// Посівні дані довідників. Порядок важливий: id видаються послідовно
// з одиниці, і доменні записи нижче посилаються саме на ці id.
var nomenclaturesData = []string{
	"Ноутбук",
	"Системний блок",
	"Монітор",
	"Моноблок",
	"Принтер",
	"БФП",
	"Сканер",
}

var typesData = []string{
	"Робочий SEDO",
	"Робочий АРМ",
	"Офісний",
	"Мережевий",
}

var departmentsData = []string{
	"Відділ кадрів",
	"Фінансовий відділ",
	"Оперативний відділ",
	"Відділ зв'язку",
}

var ranksData = []string{
	"солдат",
	"сержант",
	"лейтенант",
	"капітан",
	"майор",
	"підполковник",
}

var locationsData = []string{
	"Київ",
	"Львів",
	"Одеса",
	"Харків",
}

// needsData — запити на потребу. Дати проставляє сідер відносно
// поточного дня, щоб записи потрапляли у швидкі фільтри.
var needsData = []entities.NeedRecord{
	{
		NomenclatureID: 1, // Ноутбук
		TypeID:         1, // Робочий SEDO — потрібні облікові записи
		DepartmentID:   3,
		LocationID:     1,
		Quantity:       2,
		FullName:       "Шевченко Тарас Григорович",
		RankID:         4,
		Position:       "начальник відділення",
		Mobile:         "+380671234567",
		IsFrtCp:        true,
		Status:         "На погодженні",
		Notes:          "Заміна застарілої техніки",
		Accounts: []entities.Account{
			{FullName: "Шевченко Тарас Григорович", RankID: 4, Position: "начальник відділення", Phone: "+380671234567"},
			{FullName: "Франко Іван Якович", RankID: 2, Position: "оператор", Phone: "+380509876543"},
		},
	},
	{
		NomenclatureID: 5, // Принтер
		TypeID:         3,
		DepartmentID:   2,
		LocationID:     2,
		Quantity:       1,
		FullName:       "Косач Лариса Петрівна",
		RankID:         3,
		Position:       "діловод",
		Mobile:         "+380931112233",
		IsFrtCp:        false,
		MvoFullName:    "Сковорода Григорій Савич",
		MvoRankID:      5,
		MvoPosition:    "начальник відділу",
		MvoMobile:      "+380671119922",
		Status:         "В обробці",
		Notes:          "",
	},
	{
		NomenclatureID: 3, // Монітор
		TypeID:         3,
		DepartmentID:   1,
		LocationID:     1,
		Quantity:       4,
		FullName:       "Коцюбинський Михайло Михайлович",
		RankID:         2,
		Position:       "інспектор",
		Mobile:         "0501234567",
		IsFrtCp:        true,
		Status:         "Новий запит",
		Notes:          "Для нових робочих місць",
	},
}

var issuanceData = []entities.IssuanceRecord{
	{
		NomenclatureID: 2,
		TypeID:         2,
		DepartmentID:   3,
		LocationID:     1,
		Quantity:       1,
		Model:          "Dell OptiPlex 7010",
		SerialNumber:   "DL7010-44821",
		FullName:       "Кобилянська Ольга Юліанівна",
		RankID:         3,
		Position:       "аналітик",
		Mobile:         "+380687771122",
		RequestNumber:  "В-SEED0001",
		Status:         "На видачу",
		Notes:          "",
	},
	{
		NomenclatureID: 1,
		TypeID:         2,
		DepartmentID:   4,
		LocationID:     3,
		Quantity:       1,
		Model:          "Lenovo ThinkPad T14",
		SerialNumber:   "LT14-90312",
		FullName:       "Гончар Олесь Терентійович",
		RankID:         5,
		Position:       "черговий",
		Mobile:         "+380993334455",
		RequestNumber:  "В-SEED0002",
		Status:         "Видано",
		Notes:          "Видано під підпис",
	},
}

var rejectedData = []entities.RejectedRecord{
	{
		NomenclatureID: 4,
		TypeID:         1,
		DepartmentID:   2,
		LocationID:     4,
		Quantity:       3,
		FullName:       "Стус Василь Семенович",
		RankID:         2,
		Position:       "оператор",
		Mobile:         "+380663337788",
		Status:         "Відхилено",
		Notes:          "Немає обґрунтування потреби",
	},
}
