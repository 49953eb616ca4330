package models

import "time"

// PenpalRelation is a friendship edge between two usernames. Usernames are
// stored in both directions of lookup through a compound key on
// (requester, recipient); there is never a collection per user.
type PenpalRelation struct {
	ID        string     `bson:"_id,omitempty"`
	Requester string     `bson:"requester"`
	Recipient string     `bson:"recipient"`
	Status    string     `bson:"status"`
	SentAt    time.Time  `bson:"sentAt"`
	AnswerAt  *time.Time `bson:"answerAt,omitempty"`
}

type PenpalMessage struct {
	ID        string    `bson:"_id,omitempty"`
	Sender    string    `bson:"sender"`
	Recipient string    `bson:"recipient"`
	Body      string    `bson:"body"`
	SentAt    time.Time `bson:"sentAt"`
}
