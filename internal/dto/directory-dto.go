package dto

// CreateDirectoryItemDTO: новий елемент довідника. Прапорці класифікації
// сервіс виводить із назви сам, клієнт їх не надсилає.
type CreateDirectoryItemDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateDirectoryItemDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type DirectoryItemDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	IsComputerClass bool   `json:"is_computer_class,omitempty"`
	IsWorkstation   bool   `json:"is_workstation,omitempty"`
}
