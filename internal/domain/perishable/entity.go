package perishable

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDonorName   = errors.New("donor name is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyLocation    = errors.New("location is required")
	ErrEmptyPackaging   = errors.New("packaging is required")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidDuration  = errors.New("estimated duration must be positive")
)

// SweepThreshold is the safety margin under which items are treated as gone:
// anything with 10 minutes or less remaining is eligible for removal.
const SweepThreshold = 10 * time.Minute

type Classification string

const (
	ClassSafe     Classification = "safe"
	ClassWarning  Classification = "warning"
	ClassCritical Classification = "critical"
	ClassExpired  Classification = "expired"
)

// Classify buckets remaining shelf life. Thresholds in minutes: expired ≤10,
// critical ≤30, warning ≤60, safe above.
func Classify(remainingMinutes int64) Classification {
	switch {
	case remainingMinutes <= 10:
		return ClassExpired
	case remainingMinutes <= 30:
		return ClassCritical
	case remainingMinutes <= 60:
		return ClassWarning
	default:
		return ClassSafe
	}
}

type Attributes struct {
	FoodType    string
	Temperature float64
	Humidity    float64
	Packaging   string
}

// Item is a time-critical donation. The estimated duration is computed once at
// creation and the expiry instant derived from it never changes afterward.
type Item struct {
	id             uuid.UUID
	donorName      string
	donorContact   string
	title          string
	description    string
	location       string
	quantity       int32
	attrs          Attributes
	estimatedHours float64
	createdAt      time.Time
	expiresAt      time.Time
}

func NewItem(
	donorName, donorContact, title, description, location string,
	quantity int32,
	attrs Attributes,
	estimatedHours float64,
	now time.Time,
) (*Item, error) {
	donorName = strings.TrimSpace(donorName)
	if donorName == "" {
		return nil, ErrEmptyDonorName
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if strings.TrimSpace(attrs.Packaging) == "" {
		return nil, ErrEmptyPackaging
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if estimatedHours <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Item{
		id:             uuid.New(),
		donorName:      donorName,
		donorContact:   donorContact,
		title:          title,
		description:    description,
		location:       location,
		quantity:       quantity,
		attrs:          attrs,
		estimatedHours: estimatedHours,
		createdAt:      now,
		expiresAt:      now.Add(time.Duration(estimatedHours * float64(time.Hour))),
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	donorName, donorContact, title, description, location string,
	quantity int32,
	attrs Attributes,
	estimatedHours float64,
	createdAt, expiresAt time.Time,
) *Item {
	return &Item{
		id:             id,
		donorName:      donorName,
		donorContact:   donorContact,
		title:          title,
		description:    description,
		location:       location,
		quantity:       quantity,
		attrs:          attrs,
		estimatedHours: estimatedHours,
		createdAt:      createdAt,
		expiresAt:      expiresAt,
	}
}

// RemainingMinutes is derived at read time, never stored.
func (i *Item) RemainingMinutes(now time.Time) int64 {
	diff := i.expiresAt.Sub(now)
	if diff <= 0 {
		return 0
	}
	// Round up so a sliver of remaining time still counts as a minute.
	return int64((diff + time.Minute - 1) / time.Minute)
}

func (i *Item) Classification(now time.Time) Classification {
	return Classify(i.RemainingMinutes(now))
}

func (i *Item) ShouldBeRemoved(now time.Time) bool {
	return !i.expiresAt.After(now.Add(SweepThreshold))
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) DonorName() string       { return i.donorName }
func (i *Item) DonorContact() string    { return i.donorContact }
func (i *Item) Title() string           { return i.title }
func (i *Item) Description() string     { return i.description }
func (i *Item) Location() string        { return i.location }
func (i *Item) Quantity() int32         { return i.quantity }
func (i *Item) Attrs() Attributes       { return i.attrs }
func (i *Item) EstimatedHours() float64 { return i.estimatedHours }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) ExpiresAt() time.Time    { return i.expiresAt }
