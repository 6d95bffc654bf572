package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
)

// searchColumns are the columns a free-text query is matched against
var searchColumns = []string{
	"customers.name",
	"customers.email",
	"invoices.amount::text",
	"invoices.date::text",
	"invoices.status",
}

const invoiceRecordColumns = `
	invoices.id, customers.name, customers.email, customers.image_url,
	invoices.amount, invoices.date, invoices.status
`

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL
type PostgresInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(db *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db: db,
	}
}

// buildSearchCondition returns a WHERE clause matching query case-insensitively
// against every search column, using placeholder $argPos. An empty query
// matches everything.
func buildSearchCondition(query string, argPos int) (string, []interface{}) {
	if query == "" {
		return "", nil
	}

	conditions := make([]string, 0, len(searchColumns))
	for _, column := range searchColumns {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, argPos))
	}

	return "WHERE " + strings.Join(conditions, " OR "), []interface{}{"%" + query + "%"}
}

// pageOffset converts a 1-indexed page into a row offset. ok is false when the
// offset does not fit in an int, which can only be a page past the last row.
func pageOffset(page, pageSize int) (offset int, ok bool) {
	if page < 1 {
		page = 1
	}
	if pageSize > 0 && page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

// FetchFilteredInvoices returns one page of invoices matching query, newest first
func (r *PostgresInvoiceRepository) FetchFilteredInvoices(ctx context.Context, query string, page, pageSize int) ([]domain.InvoiceRecord, error) {
	offset, ok := pageOffset(page, pageSize)
	if !ok {
		return []domain.InvoiceRecord{}, nil
	}

	whereClause, args := buildSearchCondition(query, 1)
	argCount := len(args) + 1
	args = append(args, pageSize, offset)

	sql := fmt.Sprintf(`
		SELECT %s
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		%s
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $%d OFFSET $%d
	`, invoiceRecordColumns, whereClause, argCount, argCount+1)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRecords(rows)
}

// FetchInvoicesPages returns the number of pages for query at pageSize invoices per page
func (r *PostgresInvoiceRepository) FetchInvoicesPages(ctx context.Context, query string, pageSize int) (int, error) {
	whereClause, args := buildSearchCondition(query, 1)

	var totalItems int
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		%s
	`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalItems); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return totalPages(totalItems, pageSize), nil
}

func totalPages(totalItems, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(pageSize)))
}

// GetInvoiceByID retrieves an invoice by its ID
func (r *PostgresInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}

	var invoice domain.Invoice
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, amount, date, status
		FROM invoices
		WHERE id = $1
	`, invoiceID).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Date.Time, &invoice.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return &invoice, nil
}

// CreateInvoice saves a new invoice to the database
func (r *PostgresInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date.Time).Scan(&invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	return invoice, nil
}

// UpdateInvoice updates the customer, amount and status of an existing invoice
func (r *PostgresInvoiceRepository) UpdateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if _, err := uuid.Parse(invoice.ID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoice.ID)
	}

	err := r.db.QueryRow(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
		RETURNING date
	`, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.ID).Scan(&invoice.Date.Time)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoice.ID)
		}
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return invoice, nil
}

// DeleteInvoice deletes an invoice by its ID
func (r *PostgresInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}

	commandTag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}

	return nil
}

// scanInvoiceRecords reads invoice list rows in the order the database returned them
func scanInvoiceRecords(rows pgx.Rows) ([]domain.InvoiceRecord, error) {
	records := []domain.InvoiceRecord{}
	for rows.Next() {
		var rec domain.InvoiceRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Email, &rec.ImageURL,
			&rec.Amount, &rec.Date.Time, &rec.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return records, nil
}
