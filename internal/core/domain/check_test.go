package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionCheck(t *testing.T) {
	testCases := []struct {
		name    string
		from    CheckStatus
		to      CheckStatus
		allowed bool
	}{
		{"held can be deposited", CheckHeld, CheckInCollection, true},
		{"held can be voided", CheckHeld, CheckVoided, true},
		{"held cannot clear directly", CheckHeld, CheckCleared, false},
		{"in collection can clear", CheckInCollection, CheckCleared, true},
		{"in collection can bounce", CheckInCollection, CheckBounced, true},
		{"bounced can be redeposited", CheckBounced, CheckInCollection, true},
		{"bounced can be written off", CheckBounced, CheckVoided, true},
		{"cleared is terminal", CheckCleared, CheckInCollection, false},
		{"voided is terminal", CheckVoided, CheckHeld, false},
		{"self transition rejected", CheckHeld, CheckHeld, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransitionCheck(tc.from, tc.to))
		})
	}
}

func TestCheckStatusTerminal(t *testing.T) {
	assert.True(t, CheckCleared.IsTerminal())
	assert.True(t, CheckVoided.IsTerminal())
	assert.False(t, CheckHeld.IsTerminal())
	assert.False(t, CheckInCollection.IsTerminal())
	assert.False(t, CheckBounced.IsTerminal())
}

func TestValidCheckStatus(t *testing.T) {
	for _, s := range []CheckStatus{CheckHeld, CheckInCollection, CheckCleared, CheckBounced, CheckVoided} {
		assert.True(t, ValidCheckStatus(s))
	}
	assert.False(t, ValidCheckStatus(CheckStatus("LOST")))
}
