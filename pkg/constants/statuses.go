package constants

// --- СТАТУСИ ЗАПИТІВ НА ПОТРЕБУ ---
const (
	NeedStatusPending    = "На погодженні"
	NeedStatusProcessing = "В обробці"
	NeedStatusApproved   = "Погоджено"
	NeedStatusRejected   = "Відхилено"
	NeedStatusNew        = "Новий запит"
)

// NeedStatuses — повний перелік допустимих статусів запиту.
var NeedStatuses = []string{
	NeedStatusPending,
	NeedStatusProcessing,
	NeedStatusApproved,
	NeedStatusRejected,
	NeedStatusNew,
}

// --- СТАТУСИ ВИДАЧІ ---
const (
	IssuanceStatusPending   = "На видачу"
	IssuanceStatusPreparing = "Готується"
	IssuanceStatusReady     = "Готово"
	IssuanceStatusPaused    = "На паузі"
	IssuanceStatusReturned  = "Повернули"
	IssuanceStatusReplace   = "Заміна"
	IssuanceStatusCancelled = "Відміна"
	IssuanceStatusAwaiting  = "Чекаєм на поставку"
	IssuanceStatusIssued    = "Видано" // термінальний для звичайного процесу
)

var IssuanceStatuses = []string{
	IssuanceStatusPending,
	IssuanceStatusPreparing,
	IssuanceStatusReady,
	IssuanceStatusPaused,
	IssuanceStatusReturned,
	IssuanceStatusReplace,
	IssuanceStatusCancelled,
	IssuanceStatusAwaiting,
	IssuanceStatusIssued,
}

// IsValidNeedStatus перевіряє, що статус входить до фіксованого переліку.
func IsValidNeedStatus(status string) bool {
	for _, s := range NeedStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidIssuanceStatus(status string) bool {
	for _, s := range IssuanceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTransitionStatus — статуси, які у формі редагування означають не дані,
// а команду погодити/відхилити. Звичайне оновлення їх не приймає.
func IsTransitionStatus(status string) bool {
	return status == NeedStatusApproved || status == NeedStatusRejected
}
