package domain

import "time"

// Content is a keyed piece of editable site copy (hero title, phone numbers…).
// Key is unique across all content records.
type Content struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
