package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDispatched, false},
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusDispatched, true},
		{StatusApproved, StatusApproved, false},
		{StatusApproved, StatusDelivered, false},
		{StatusApproved, StatusRejected, false},
		{StatusDispatched, StatusDelivered, true},
		{StatusDispatched, StatusApproved, false},
		{StatusDispatched, StatusRejected, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusApproved, StatusRejected, StatusDispatched, StatusDelivered}
	for _, to := range all {
		assert.False(t, CanTransition(StatusRejected, to), "rejected -> %s", to)
		assert.False(t, CanTransition(StatusDelivered, to), "delivered -> %s", to)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "dispatched", "delivered"} {
		st, ok := ParseStatus(s)
		assert.True(t, ok)
		assert.Equal(t, OrderStatus(s), st)
	}
	for _, s := range []string{"", "Pending", "shipped", "cancelled", "done"} {
		_, ok := ParseStatus(s)
		assert.False(t, ok, s)
	}
}

func TestInvalidTransitionErrorNamesBothStates(t *testing.T) {
	err := &InvalidTransitionError{From: StatusPending, To: StatusDispatched}
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "dispatched")
}
