package notification

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
)

// Topic is the single broadcast channel every client device subscribes to.
// There is no per-device addressing.
const Topic = "updates"

// ErrMissingTitleBody is returned when a dispatch request lacks either
// required field.
var ErrMissingTitleBody = errors.New("Title and Body are required")

// Sender is the push-messaging send primitive. *messaging.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// HistoryWriter is the slice of HistoryStore the dispatcher needs.
type HistoryWriter interface {
	Add(ctx context.Context, rec *Record) (string, error)
}

// Dispatcher builds the push payload, sends it immediately or after an
// in-process delay, and records each delivered notification in history.
//
// Deferred sends live only in this process's memory: a restart before the
// deadline drops them without a trace, and a failure after the deadline is
// logged but never reported to the caller. Both are deliberate.
type Dispatcher struct {
	sender  Sender
	history HistoryWriter

	now   func() time.Time
	after func(d time.Duration, f func())
}

func NewDispatcher(sender Sender, history HistoryWriter) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		history: history,
		now:     time.Now,
		after:   func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Dispatch sends the notification now, or registers a one-shot deferred
// send when scheduledTime lies in the future. A scheduledTime in the past
// (or one that does not parse) behaves as if it were absent.
func (d *Dispatcher) Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error) {
	if req.Title == "" || req.Body == "" {
		return nil, ErrMissingTitleBody
	}

	msg := buildMessage(req)

	if req.ScheduledTime != "" {
		if delay, ok := d.scheduleDelay(req.ScheduledTime); ok && delay > 0 {
			jobID := uuid.New().String()
			d.after(delay, func() { d.sendDeferred(jobID, msg, req) })
			slog.Info("Notification scheduled", "job_id", jobID, "delay", delay, "title", req.Title)
			return &DispatchResult{Success: true, Message: "Scheduled"}, nil
		}
	}

	messageID, err := d.sender.Send(ctx, msg)
	if err != nil {
		slog.Error("Error sending notification", "error", err)
		return nil, err
	}

	if _, err := d.history.Add(ctx, buildRecord(req)); err != nil {
		// The push already went out; the caller still sees this as a
		// failure. Known inconsistency, kept as-is.
		slog.Error("Error saving notification history", "error", err)
		return nil, err
	}

	return &DispatchResult{Success: true, MessageID: messageID}, nil
}

// sendDeferred fires when a scheduled delay elapses. Failures are logged
// and swallowed; the original caller was already acknowledged.
func (d *Dispatcher) sendDeferred(jobID string, msg *messaging.Message, req *DispatchRequest) {
	ctx := context.Background()

	messageID, err := d.sender.Send(ctx, msg)
	if err != nil {
		slog.Error("Scheduled notification send failed", "job_id", jobID, "error", err)
		return
	}

	if _, err := d.history.Add(ctx, buildRecord(req)); err != nil {
		slog.Error("Scheduled notification history write failed", "job_id", jobID, "error", err)
		return
	}

	slog.Info("Scheduled notification sent", "job_id", jobID, "message_id", messageID)
}

// scheduleDelay parses the scheduled time and returns the remaining delay.
// An unparseable value falls back to an immediate send.
func (d *Dispatcher) scheduleDelay(scheduledTime string) (time.Duration, bool) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, scheduledTime, time.Local); err == nil {
			return t.Sub(d.now()), true
		}
	}
	slog.Warn("Unparseable scheduledTime, sending immediately", "scheduledTime", scheduledTime)
	return 0, false
}

func buildMessage(req *DispatchRequest) *messaging.Message {
	android := &messaging.AndroidNotification{
		Icon:      "ic_launcher",
		Color:     "#D32F2F",
		ChannelID: "default_channel",
		Priority:  messaging.PriorityDefault,
	}
	if req.IsHighAlert {
		android.ChannelID = "high_importance_channel"
		android.Priority = messaging.PriorityHigh
		android.Sound = "default"
	}

	return &messaging.Message{
		Notification: &messaging.Notification{
			Title: req.Title,
			Body:  req.Body,
		},
		Data: map[string]string{
			"type":        valueOr(req.Type, "text"),
			"mediaUrl":    req.MediaURL,
			"isHighAlert": strconv.FormatBool(req.IsHighAlert),
			"targetUrl":   req.TargetURL,
		},
		Android: &messaging.AndroidConfig{Notification: android},
		Topic:   Topic,
	}
}

func buildRecord(req *DispatchRequest) *Record {
	return &Record{
		Title:       req.Title,
		Body:        req.Body,
		Type:        valueOr(req.Type, "text"),
		MediaURL:    req.MediaURL,
		IsHighAlert: req.IsHighAlert,
		TargetURL:   req.TargetURL,
		Date:        time.Now().UTC().Format(time.RFC3339),
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
