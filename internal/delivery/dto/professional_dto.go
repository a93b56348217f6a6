package dto

// Response DTOs

type ProfessionalResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	WorkDays    []int  `json:"work_days"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SlotMinutes int    `json:"slot_minutes"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}

// SlotListResponse lists the open HH:MM slots of one professional on one date.
type SlotListResponse struct {
	ProfessionalID string   `json:"professional_id"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"`
	Total          int      `json:"total"`
}
