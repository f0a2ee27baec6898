package chat

import "time"

// Session captures one anonymous conversation. The id is opaque to callers
// and immutable once assigned.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
