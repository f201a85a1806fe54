package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from CheckoutState
		to   CheckoutState
		want bool
	}{
		{CheckoutStateIdle, CheckoutStateEvaluating, true},
		{CheckoutStateIdle, CheckoutStateApproved, false},
		{CheckoutStateEvaluating, CheckoutStateApproved, true},
		{CheckoutStateEvaluating, CheckoutStateAwaitingVerification, true},
		{CheckoutStateEvaluating, CheckoutStateRejected, false},
		{CheckoutStateAwaitingVerification, CheckoutStateApproved, true},
		{CheckoutStateAwaitingVerification, CheckoutStateRejected, true},
		{CheckoutStateAwaitingVerification, CheckoutStateCancelled, true},
		{CheckoutStateRejected, CheckoutStateAwaitingVerification, true},
		{CheckoutStateRejected, CheckoutStateCancelled, true},
		{CheckoutStateApproved, CheckoutStateIdle, true},
		{CheckoutStateApproved, CheckoutStateEvaluating, false},
		{CheckoutStateCancelled, CheckoutStateIdle, true},
		{CheckoutStateCancelled, CheckoutStateApproved, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCheckoutState_IsValid(t *testing.T) {
	assert.True(t, CheckoutStateIdle.IsValid())
	assert.True(t, CheckoutStateAwaitingVerification.IsValid())
	assert.False(t, CheckoutState("SHIPPED").IsValid())
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"£4.50", 4.50, false},
		{"£0.50", 0.50, false},
		{"£16.00", 16.00, false},
		{" £7.00 ", 7.00, false},
		{"4.50", 4.50, false},
		{"", 0, true},
		{"£abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.InDelta(t, tt.want, got, 0.0001)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "£23.50", FormatAmount("£", 23.5))
	assert.Equal(t, "£19.80", FormatAmount("£", 21.999*0.9))
}
