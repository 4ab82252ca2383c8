package domain

import "time"

// Message is a single direct message. Messages are immutable once created;
// sender and receiver are stored as usernames and are not required to
// reference existing User records.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Body      string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
