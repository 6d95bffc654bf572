package format

import (
	"math"
	"testing"
	"time"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"single cent", 5, "$0.05"},
		{"under a dollar", 99, "$0.99"},
		{"whole dollars", 15795, "$157.95"},
		{"thousands separator", 100050, "$1,000.50"},
		{"millions", 123456789, "$1,234,567.89"},
		{"negative", -1234, "-$12.34"},
		{"negative thousands", -100050, "-$1,000.50"},
		{"largest int64", math.MaxInt64, "$92,233,720,368,547,758.07"},
		{"smallest int64", math.MinInt64, "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCurrencyIsDeterministic(t *testing.T) {
	first := FormatCurrency(4450)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FormatCurrency(4450))
	}
}

func TestFormatDateToLocal(t *testing.T) {
	d := domain.DateOnly{Time: time.Date(2022, time.December, 6, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Dec 6, 2022", FormatDateToLocal(d))

	d = domain.DateOnly{Time: time.Date(2023, time.June, 17, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Jun 17, 2023", FormatDateToLocal(d))
}

func TestFormatAmountInput(t *testing.T) {
	assert.Equal(t, "1000.50", FormatAmountInput(100050))
	assert.Equal(t, "0.05", FormatAmountInput(5))
	assert.Equal(t, "157.00", FormatAmountInput(15700))
}
