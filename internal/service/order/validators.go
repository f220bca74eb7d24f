package order

import "rolloff/internal/entities"

func isValidOrderStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderScheduled,
		entities.OrderOnWay,
		entities.OrderDelivered,
		entities.OrderOnWayPickup,
		entities.OrderPickedUp,
		entities.OrderCompleted,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}
