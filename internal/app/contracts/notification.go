package contracts

import "context"

// CrisisAlertJob is the payload published when a mood entry falls at or below
// the crisis threshold.
type CrisisAlertJob struct {
	UserID    string   `json:"user_id"`
	Username  string   `json:"username"`
	MoodID    string   `json:"mood_id"`
	Scale     int      `json:"scale"`
	ContactID []string `json:"contact_ids"`
}

type NotificationPublisher interface {
	PublishCrisisAlert(ctx context.Context, job *CrisisAlertJob) error
}
