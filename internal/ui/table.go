package ui

import (
	"fmt"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/format"
)

// InvoiceRow is one rendered invoice, shared by the compact and tabular layouts
type InvoiceRow struct {
	Key      string
	Name     string
	Email    string
	ImageURL string
	ImageAlt string
	Amount   string
	Date     string
	Status   Badge
	Update   LinkButton
	Delete   FormButton
}

// InvoicesTable holds the rows of one page of invoices
type InvoicesTable struct {
	Rows []InvoiceRow
}

// NewInvoicesTable builds one row per record, in the order given.
// Identifiers must be unique within the page.
func NewInvoicesTable(records []domain.InvoiceRecord) (*InvoicesTable, error) {
	rows := make([]InvoiceRow, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateInvoiceID, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		badge, err := StatusBadge(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: %w", rec.ID, err)
		}

		rows = append(rows, InvoiceRow{
			Key:      rec.ID,
			Name:     rec.Name,
			Email:    rec.Email,
			ImageURL: rec.ImageURL,
			ImageAlt: rec.Name + "'s profile picture",
			Amount:   format.FormatCurrency(rec.Amount),
			Date:     format.FormatDateToLocal(rec.Date),
			Status:   badge,
			Update:   UpdateInvoiceButton(rec.ID),
			Delete:   DeleteInvoiceButton(rec.ID),
		})
	}

	return &InvoicesTable{Rows: rows}, nil
}

// Len returns the number of rows
func (t *InvoicesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
