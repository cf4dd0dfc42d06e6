package commands

import (
	"context"

	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

// ExpiryEstimator is the external shelf-life prediction collaborator. It may
// be unreachable; callers fall back to a fixed duration and log instead of
// propagating.
type ExpiryEstimator interface {
	Estimate(ctx context.Context, foodType string, temperature, humidity float64, packaging string) (float64, error)
}

type EntityKind string

const (
	EntityKindOrder      EntityKind = "order"
	EntityKindDonation   EntityKind = "donation"
	EntityKindPerishable EntityKind = "perishable"
)

// RelatedRef is a tagged reference to the entity an event concerns, replacing
// the dynamically-typed pointer the notification schema used to carry.
type RelatedRef struct {
	Kind EntityKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

type Event struct {
	// RecipientID is nil for broadcast events.
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Related     RelatedRef `json:"related"`
}

const (
	EventKindStatusChanged = "statusChanged"
	EventKindNewPerishable = "newPerishable"
)

// NotificationPublisher delivers events fire-and-forget. Implementations must
// bound the publish with a timeout and log failures; no error ever reaches
// the caller.
type NotificationPublisher interface {
	Publish(ctx context.Context, ev Event)
}
