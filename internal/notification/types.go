package notification

import "time"

// DispatchRequest is the send-notification request body. Only title and
// body are required; everything else defaults.
type DispatchRequest struct {
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Type          string `json:"type"`
	MediaURL      string `json:"mediaUrl"`
	IsHighAlert   bool   `json:"isHighAlert"`
	TargetURL     string `json:"targetUrl"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
}

// Record is one entry in the notification history collection. Timestamp is
// assigned by the store at write time and orders the history listing.
type Record struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Body        string    `json:"body" firestore:"body"`
	Type        string    `json:"type" firestore:"type"`
	MediaURL    string    `json:"mediaUrl" firestore:"mediaUrl"`
	IsHighAlert bool      `json:"isHighAlert" firestore:"isHighAlert"`
	TargetURL   string    `json:"targetUrl" firestore:"targetUrl"`
	Date        string    `json:"date" firestore:"date"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// DispatchResult is the success response of a dispatch. MessageID is only
// set for immediate sends; a deferred send acknowledges with Message
// "Scheduled" before anything happens.
type DispatchResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message,omitempty"`
}
