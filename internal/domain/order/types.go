package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusReady     Status = "ready"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// validTransitions is the full status flow. Completed and cancelled are
// terminal: no entry, no way out.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusReady, StatusCancelled},
	StatusReady:     {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
	StatusDelivered: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy so callers cannot mutate the table.
func (s Status) AllowedTransitions() []Status {
	allowed := validTransitions[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

type Type string

const (
	TypePickup   Type = "pickup"
	TypeDelivery Type = "delivery"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypePickup || t == TypeDelivery
}
