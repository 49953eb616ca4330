package responses

import "time"

type PenpalRequest struct {
	RequestID string    `json:"request_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

type PenpalFriend struct {
	Username string    `json:"username"`
	Since    time.Time `json:"since"`
}

type PenpalMessage struct {
	MessageID string    `json:"message_id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}
