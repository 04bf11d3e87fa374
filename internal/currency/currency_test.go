package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javierDev03/invoices/internal/currency"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{30, "$30.00"},
		{20.8, "$20.80"},
		{150.8, "$150.80"},
		{1234.567, "$1234.57"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, currency.Format(tt.in))
	}
}
