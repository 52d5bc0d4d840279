package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Cash on Delivery", PaymentMethodLabel(PaymentMethodCOD))
	assert.Equal(t, "UPI Payment", PaymentMethodLabel(PaymentMethodUPI))
	assert.Equal(t, "Card Payment", PaymentMethodLabel(PaymentMethodCard))
	assert.Equal(t, "Net Banking", PaymentMethodLabel(PaymentMethodNetBanking))

	// Unknown codes pass through unchanged.
	assert.Equal(t, "wallet", PaymentMethodLabel("wallet"))
}
