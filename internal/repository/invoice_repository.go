package repository

//go:generate mockgen -source=invoice_repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Invoice list operations
	FetchFilteredInvoices(ctx context.Context, query string, page, pageSize int) ([]domain.InvoiceRecord, error)
	FetchInvoicesPages(ctx context.Context, query string, pageSize int) (int, error)
	FetchLatestInvoices(ctx context.Context, limit int) ([]domain.InvoiceRecord, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)

	// Invoice CRUD operations
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error)
}
