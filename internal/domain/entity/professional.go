package entity

import "time"

// Professional is a member of the clinic roster. The schedule template
// (work days + daily window + slot size) drives the availability engine.
type Professional struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	WorkDays    []int  `json:"work_days"`    // time.Weekday numbers, 0=Sunday
	Start       string `json:"start"`        // HH:MM
	End         string `json:"end"`          // HH:MM
	SlotMinutes int    `json:"slot_minutes"` // fixed slot size
}

// WorksOn reports whether the professional attends on the given weekday.
func (p *Professional) WorksOn(day time.Weekday) bool {
	for _, d := range p.WorkDays {
		if d == int(day) {
			return true
		}
	}
	return false
}
