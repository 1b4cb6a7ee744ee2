package errors

import "fmt"

var (
	// Загальні
	ErrNotFound   = fmt.Errorf("запис не знайдено")
	ErrBadRequest = fmt.Errorf("невірний запит")

	// Підтвердження дій
	ErrNotConfirmed = fmt.Errorf("дія потребує підтвердження користувача")

	// Життєвий цикл записів
	ErrEmptyRejectReason    = fmt.Errorf("причина відхилення не може бути порожньою")
	ErrStatusIsTransition   = fmt.Errorf("зміна статусу на 'Погоджено' чи 'Відхилено' виконується окремою дією погодження/відхилення")
	ErrUnknownStatus        = fmt.Errorf("невідомий статус")
	ErrAccountCountMismatch = fmt.Errorf("кількість облікових записів має дорівнювати кількості одиниць техніки")
)

// InvalidInputError — помилка валідації вхідних даних поза validator-ом.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError несе HTTP-код та повідомлення для клієнта разом із
// внутрішньою помилкою та контекстом для логів.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
