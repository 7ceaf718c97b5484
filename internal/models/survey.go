package models

import "time"

// Survey is a one-shot feedback form submission. It has no relationships
// and is write-only from the caller's perspective.
type Survey struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	OtherSource string    `json:"other_source"`
	Rating      int       `json:"rating"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}
