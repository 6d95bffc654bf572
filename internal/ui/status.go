package ui

import (
	"fmt"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
)

// Badge is the visual indicator for an invoice status
type Badge struct {
	Label string
	Class string
	Icon  string
}

// StatusBadge maps a status to its badge. Statuses outside the closed set
// are rejected rather than rendered blank.
func StatusBadge(status domain.InvoiceStatus) (Badge, error) {
	switch status {
	case domain.InvoiceStatusPending:
		return Badge{Label: "Pending", Class: "status-badge status-pending", Icon: "clock"}, nil
	case domain.InvoiceStatusPaid:
		return Badge{Label: "Paid", Class: "status-badge status-paid", Icon: "check"}, nil
	default:
		return Badge{}, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, string(status))
	}
}
