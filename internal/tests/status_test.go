package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to domain.OrderStatus }{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusConfirmed, domain.StatusPreparing},
		{domain.StatusPreparing, domain.StatusReady},
		{domain.StatusReady, domain.StatusDelivered},
		{domain.StatusReady, domain.StatusCompleted},
		{domain.StatusDelivered, domain.StatusCompleted},
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusCancelled},
		{domain.StatusPreparing, domain.StatusCancelled},
		{domain.StatusReady, domain.StatusCancelled},
		{domain.StatusDelivered, domain.StatusCancelled},
	}
	for _, transition := range allowed {
		assert.True(t, service.CanTransition(transition.from, transition.to),
			"%s -> %s should be allowed", transition.from, transition.to)
	}

	denied := []struct{ from, to domain.OrderStatus }{
		{domain.StatusPending, domain.StatusPreparing},
		{domain.StatusPending, domain.StatusDelivered},
		{domain.StatusConfirmed, domain.StatusReady},
		{domain.StatusReady, domain.StatusPending},
		{domain.StatusCompleted, domain.StatusCancelled},
		{domain.StatusCancelled, domain.StatusPending},
		{domain.StatusCompleted, domain.StatusCompleted},
		{domain.StatusDelivered, domain.StatusReady},
	}
	for _, transition := range denied {
		assert.False(t, service.CanTransition(transition.from, transition.to),
			"%s -> %s should be rejected", transition.from, transition.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []domain.OrderStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusPreparing,
		domain.StatusReady, domain.StatusDelivered, domain.StatusCompleted, domain.StatusCancelled,
	} {
		assert.True(t, service.ValidStatus(status))
	}
	assert.False(t, service.ValidStatus("shipped"))
	assert.False(t, service.ValidStatus(""))
}
