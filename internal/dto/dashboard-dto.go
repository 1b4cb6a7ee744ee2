package dto

// DashboardDTO: лічильники для шапки панелі. Видані записи ("Видано")
// у черзі на видачу не рахуються.
type DashboardDTO struct {
	PendingNeeds    int `json:"pending_needs"`
	PendingIssuance int `json:"pending_issuance"`
	Rejected        int `json:"rejected"`
}
