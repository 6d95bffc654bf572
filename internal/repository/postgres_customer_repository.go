package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgreSQL customer repository
func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

// ListCustomers returns every customer ordered by name
func (r *PostgresCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetCustomerByID retrieves a customer by its ID
func (r *PostgresCustomerRepository) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if _, err := uuid.Parse(customerID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
	}

	var c domain.Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, image_url
		FROM customers
		WHERE id = $1
	`, customerID).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

// FetchFilteredCustomers returns customers whose name or email matches query,
// with their invoice totals
func (r *PostgresCustomerRepository) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id),
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0)
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
	`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	summaries := []domain.CustomerSummary{}
	for rows.Next() {
		var s domain.CustomerSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.ImageURL,
			&s.TotalInvoices, &s.TotalPending, &s.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return summaries, nil
}
