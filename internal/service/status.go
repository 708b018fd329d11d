package service

import "github.com/guniorg/mannabean-delivery-v3/internal/domain"

// transitions is the full lifecycle: pending → confirmed → preparing → ready,
// then delivered and/or completed. Cancellation is allowed from any
// non-terminal state; completed and cancelled accept nothing.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed: {domain.StatusPreparing, domain.StatusCancelled},
	domain.StatusPreparing: {domain.StatusReady, domain.StatusCancelled},
	domain.StatusReady:     {domain.StatusDelivered, domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusDelivered: {domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusCompleted: {},
	domain.StatusCancelled: {},
}

func ValidStatus(status domain.OrderStatus) bool {
	_, ok := transitions[status]
	return ok
}

func CanTransition(from, to domain.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
