package order

// CreatedEvent is published once when an order row is genuinely created.
// It is an ephemeral value: never persisted, and its loss is tolerated.
type CreatedEvent struct {
	OrderID string
	Status  Status
}

// StatusChangedEvent is produced once per successful status transition and
// handed to the notification publisher strictly after the transaction commits.
//
// Meta is an opaque pass-through object supplied by the caller (who updated,
// client timestamps, etc.); the core never inspects it.
type StatusChangedEvent struct {
	OrderID   string
	NewStatus Status
	Version   int
	Meta      map[string]any
}

// NewCreatedEvent builds the post-commit creation event for an order.
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		OrderID: o.ID(),
		Status:  o.Status(),
	}
}

// NewStatusChangedEvent builds the post-commit transition event for an order.
// The status and version are taken from the committed row, never from a
// pre-update snapshot.
func NewStatusChangedEvent(o *Order, meta map[string]any) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:   o.ID(),
		NewStatus: o.Status(),
		Version:   o.Version(),
		Meta:      meta,
	}
}
