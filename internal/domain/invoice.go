package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrUnknownStatus      = errors.New("unknown invoice status")
	ErrDuplicateInvoiceID = errors.New("duplicate invoice id")
)

// DateLayout is the storage and wire format of a DateOnly value
const DateLayout = "2006-01-02"

// DateOnly is a calendar date without time-of-day semantics
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to its calendar date in UTC
func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses a YYYY-MM-DD string
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{Time: t}, nil
}

// String returns the date in YYYY-MM-DD format
func (d DateOnly) String() string {
	return d.Time.Format(DateLayout)
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	// Handle null/empty dates
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(DateLayout))
}

// InvoiceStatus is the closed set of states an invoice can be in
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// ParseInvoiceStatus converts a raw value into an InvoiceStatus.
// Anything outside {pending, paid} is rejected with ErrUnknownStatus.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether the status is one of the recognized values
func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
}

// Invoice is the stored invoice entity as edited through the dashboard
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"` // minor currency units (cents)
	Date       DateOnly      `json:"date"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceRecord is one row of the invoices list: an invoice joined with its customer
type InvoiceRecord struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	ImageURL string        `json:"image_url"`
	Amount   int64         `json:"amount"` // minor currency units (cents)
	Date     DateOnly      `json:"date"`
	Status   InvoiceStatus `json:"status"`
}

// CardData holds the totals shown on the dashboard overview
type CardData struct {
	NumberOfInvoices  int   `json:"number_of_invoices"`
	NumberOfCustomers int   `json:"number_of_customers"`
	TotalPaid         int64 `json:"total_paid"`
	TotalPending      int64 `json:"total_pending"`
}

// Dashboard is the overview page payload
type Dashboard struct {
	Cards          CardData        `json:"cards"`
	LatestInvoices []InvoiceRecord `json:"latest_invoices"`
}
