package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceStatus(t *testing.T) {
	status, err := ParseInvoiceStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusPending, status)

	status, err = ParseInvoiceStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusPaid, status)

	for _, raw := range []string{"", "PAID", "overdue", "cancelled"} {
		_, err := ParseInvoiceStatus(raw)
		assert.True(t, errors.Is(err, ErrUnknownStatus), "expected ErrUnknownStatus for %q", raw)
	}
}

func TestDateOnlyJSON(t *testing.T) {
	var payload struct {
		Date DateOnly `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2022-12-06"}`), &payload))
	assert.Equal(t, time.Date(2022, time.December, 6, 0, 0, 0, 0, time.UTC), payload.Date.Time)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2022-12-06"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &payload))
	assert.True(t, payload.Date.IsZero())

	out, err = json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"06/12/2022"}`), &payload))
}

func TestNewDateOnlyDropsTimeOfDay(t *testing.T) {
	local := time.Date(2024, time.March, 9, 23, 45, 0, 0, time.FixedZone("X", 3600))
	d := NewDateOnly(local)
	assert.Equal(t, "2024-03-09", d.String())
	assert.Equal(t, 0, d.Hour())
}
