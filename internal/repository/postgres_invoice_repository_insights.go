package repository

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
)

// FetchLatestInvoices returns the most recent invoices for the dashboard overview
func (r *PostgresInvoiceRepository) FetchLatestInvoices(ctx context.Context, limit int) ([]domain.InvoiceRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $1
	`, invoiceRecordColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRecords(rows)
}

// FetchCardData retrieves invoice and customer totals for the dashboard cards
func (r *PostgresInvoiceRepository) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	cards := &domain.CardData{}

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices
	`).Scan(&cards.NumberOfInvoices, &cards.TotalPaid, &cards.TotalPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice totals: %w", err)
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&cards.NumberOfCustomers); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	return cards, nil
}
