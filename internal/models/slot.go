package models

type Slot struct {
	ID        string   `json:"_id"`
	GymID     string   `json:"gymId,omitempty"`
	Gym       *GymRef  `json:"gym,omitempty"`
	Date      FlexDate `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Trainer   string   `json:"trainer,omitempty"`
	Price     float64  `json:"price"`
	Available *bool    `json:"available,omitempty"`
}

// IsAvailable applies the permissive default: only an explicit false marks
// a slot as taken.
func (s Slot) IsAvailable() bool {
	return s.Available == nil || *s.Available
}
