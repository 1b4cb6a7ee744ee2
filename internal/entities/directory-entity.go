package entities

// DirectoryItem — елемент довідника (номенклатура, тип, відділ,
// звання, локація). Прапорці класифікації виставляються один раз
// при створенні за назвою і перейменуванням не змінюються.
type DirectoryItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	// Лише для номенклатур: комп'ютерна техніка.
	IsComputerClass bool `json:"is_computer_class,omitempty"`
	// Лише для типів: робоче місце (АРМ/СЕДО).
	IsWorkstation bool `json:"is_workstation,omitempty"`
}
