package services

import "rf-wms/models"

// Status derivation lives here and nowhere else. Statuses are computed from
// recorded quantities after every mutation, never set directly, so the two
// order representations can't drift from what was actually picked. Each
// function takes the current status and never returns an earlier one.

const (
	StatusPending   = "pending"
	StatusReceiving = "receiving"
	StatusCompleted = "completed"

	StatusPicking = "picking"
	StatusPicked  = "picked"
	StatusShipped = "shipped"

	StatusActive = "active"
	StatusPaused = "paused"

	StatusCounted = "counted"
)

// DerivePOStatus: completed when every line is fully received, receiving
// once anything has arrived, else pending.
func DerivePOStatus(items []models.POItem, current string) string {
	if current == StatusCompleted {
		return StatusCompleted
	}

	allReceived := len(items) > 0
	anyReceived := false
	for _, item := range items {
		if item.ReceivedQty > 0 {
			anyReceived = true
		}
		if item.ReceivedQty < item.OrderedQty {
			allReceived = false
		}
	}

	switch {
	case allReceived:
		return StatusCompleted
	case anyReceived:
		return StatusReceiving
	default:
		return StatusPending
	}
}

// DeriveOrderStatus for the wave representation: a line is done once its
// terminal PickedQty covers OrderedQty.
func DeriveOrderStatus(items []models.OrderItem, current string) string {
	if current == StatusShipped {
		return StatusShipped
	}

	allPicked := len(items) > 0
	anyPicked := false
	for _, item := range items {
		if item.PickedQty > 0 {
			anyPicked = true
		}
		if item.PickedQty < item.OrderedQty {
			allPicked = false
		}
	}

	switch {
	case allPicked:
		return StatusPicked
	case anyPicked:
		return StatusPicking
	default:
		return StatusPending
	}
}

// DeriveSalesOrderStatus for the incremental representation: a line is done
// when nothing remains to deliver.
func DeriveSalesOrderStatus(items []models.SOItem, current string) string {
	if current == StatusShipped {
		return StatusShipped
	}

	allDelivered := len(items) > 0
	anyDelivered := false
	for _, item := range items {
		if item.DeliveredQty > 0 {
			anyDelivered = true
		}
		if item.RemainingQty > 0 {
			allDelivered = false
		}
	}

	switch {
	case allDelivered:
		return StatusPicked
	case anyDelivered:
		return StatusPicking
	default:
		return StatusPending
	}
}

// DeriveWaveStatus: completed when every order in the wave is picked or
// shipped, active once any picking started.
func DeriveWaveStatus(orders []models.Order, current string) string {
	if current == StatusCompleted {
		return StatusCompleted
	}

	allPicked := len(orders) > 0
	anyStarted := false
	for _, order := range orders {
		switch order.Status {
		case StatusPicked, StatusShipped:
			anyStarted = true
		case StatusPicking:
			anyStarted = true
			allPicked = false
		default:
			allPicked = false
		}
	}

	switch {
	case allPicked:
		return StatusCompleted
	case anyStarted:
		return StatusActive
	default:
		return StatusPending
	}
}
