package models

import "time"

// MessageRequest is the write-only payload of POST /messages/send. There is
// no delivery-state entity: the server acknowledges with a `{status}` body
// and the client treats the message as fire-and-forget.
type MessageRequest struct {
	RecipientID   int    `json:"recipient_id"`
	RecipientType string `json:"recipient_type"`
	Subject       string `json:"subject"`
	Content       string `json:"content"`
}

// RecipientTypeTherapist is the only recipient type the contract defines.
const RecipientTypeTherapist = "therapist"

// Message is the server-side record of a sent message.
type Message struct {
	ID            int64     `json:"id"`
	SenderID      int64     `json:"-"`
	RecipientID   int       `json:"recipient_id"`
	RecipientType string    `json:"recipient_type"`
	Subject       string    `json:"subject"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
