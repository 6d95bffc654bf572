package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/repository"
	"github.com/shopspring/decimal"
)

// LatestInvoicesLimit is the number of invoices shown on the dashboard overview
const LatestInvoicesLimit = 5

// maxAmountCents is the largest amount an invoice can store
var maxAmountCents = decimal.NewFromInt(math.MaxInt64)

// InvoiceServiceError represents an error in the invoice service
type InvoiceServiceError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *InvoiceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *InvoiceServiceError) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid invoice input, keyed by form field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid invoice input: " + strings.Join(parts, "; ")
}

// InvoiceInput is the user-supplied data for creating or updating an invoice.
// Amount is in dollars, e.g. "1000.50".
type InvoiceInput struct {
	CustomerID string `json:"customerId" form:"customerId" validate:"required,uuid"`
	Amount     string `json:"amount" form:"amount" validate:"required"`
	Status     string `json:"status" form:"status" validate:"required,oneof=pending paid"`
}

// InvoiceService defines the interface for invoice-related business logic
type InvoiceService interface {
	// List operations
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRecord, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchDashboard(ctx context.Context) (*domain.Dashboard, error)

	// CRUD operations
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, input InvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, input InvoiceInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// Customer operations
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error)

	PageSize() int
}

// InvoiceServiceImpl implements the InvoiceService interface
type InvoiceServiceImpl struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	validate  *validator.Validate
	pageSize  int
	now       func() time.Time
}

// Option configures an InvoiceServiceImpl
type Option func(*InvoiceServiceImpl)

// WithClock overrides the clock used to date new invoices
func WithClock(now func() time.Time) Option {
	return func(s *InvoiceServiceImpl) {
		s.now = now
	}
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices repository.InvoiceRepository, customers repository.CustomerRepository, pageSize int, opts ...Option) *InvoiceServiceImpl {
	if pageSize < 1 {
		pageSize = 6
	}

	s := &InvoiceServiceImpl{
		invoices:  invoices,
		customers: customers,
		validate:  validator.New(),
		pageSize:  pageSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageSize returns the number of invoices per page
func (s *InvoiceServiceImpl) PageSize() int {
	return s.pageSize
}

// FetchFilteredInvoices returns the invoices for (query, page) in the order the
// repository returned them. Exactly one repository call is made.
func (s *InvoiceServiceImpl) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRecord, error) {
	records, err := s.invoices.FetchFilteredInvoices(ctx, query, page, s.pageSize)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "fetch_filtered_invoices", Err: err}
	}
	return records, nil
}

// FetchInvoicesPages returns the total number of pages for query
func (s *InvoiceServiceImpl) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	pages, err := s.invoices.FetchInvoicesPages(ctx, query, s.pageSize)
	if err != nil {
		return 0, &InvoiceServiceError{Op: "fetch_invoices_pages", Err: err}
	}
	return pages, nil
}

// FetchDashboard returns the overview cards and the latest invoices
func (s *InvoiceServiceImpl) FetchDashboard(ctx context.Context) (*domain.Dashboard, error) {
	cards, err := s.invoices.FetchCardData(ctx)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "fetch_card_data", Err: err}
	}

	latest, err := s.invoices.FetchLatestInvoices(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "fetch_latest_invoices", Err: err}
	}

	return &domain.Dashboard{Cards: *cards, LatestInvoices: latest}, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "get_invoice", Err: err}
	}
	return invoice, nil
}

// CreateInvoice validates input and stores a new invoice dated today
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, input InvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.buildInvoice(ctx, input)
	if err != nil {
		return nil, err
	}
	invoice.Date = domain.NewDateOnly(s.now())

	created, err := s.invoices.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "create_invoice", Err: err}
	}
	return created, nil
}

// UpdateInvoice validates input and updates an existing invoice
func (s *InvoiceServiceImpl) UpdateInvoice(ctx context.Context, invoiceID string, input InvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.buildInvoice(ctx, input)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID

	updated, err := s.invoices.UpdateInvoice(ctx, invoice)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "update_invoice", Err: err}
	}
	return updated, nil
}

// DeleteInvoice deletes an invoice by ID
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoices.DeleteInvoice(ctx, invoiceID); err != nil {
		return &InvoiceServiceError{Op: "delete_invoice", Err: err}
	}
	return nil
}

// ListCustomers returns every customer, used by the invoice forms
func (s *InvoiceServiceImpl) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "list_customers", Err: err}
	}
	return customers, nil
}

// FetchFilteredCustomers returns customers matching query with their invoice totals
func (s *InvoiceServiceImpl) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error) {
	customers, err := s.customers.FetchFilteredCustomers(ctx, query)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "fetch_filtered_customers", Err: err}
	}
	return customers, nil
}

// buildInvoice validates input and converts it into an invoice without ID or date
func (s *InvoiceServiceImpl) buildInvoice(ctx context.Context, input InvoiceInput) (*domain.Invoice, error) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.Amount = strings.TrimSpace(input.Amount)
	input.Status = strings.TrimSpace(input.Status)

	fields := map[string]string{}
	if err := s.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, &InvoiceServiceError{Op: "validate_invoice", Err: err}
		}
		for _, fe := range validationErrs {
			switch fe.Field() {
			case "CustomerID":
				fields["customerId"] = "Please select a customer."
			case "Amount":
				fields["amount"] = "Please enter an amount greater than $0."
			case "Status":
				fields["status"] = "Please select an invoice status."
			}
		}
	}

	var amount int64
	if _, failed := fields["amount"]; !failed {
		cents, msg := parseAmount(input.Amount)
		if msg != "" {
			fields["amount"] = msg
		}
		amount = cents
	}

	if _, failed := fields["customerId"]; !failed {
		if _, err := s.customers.GetCustomerByID(ctx, input.CustomerID); err != nil {
			if !errors.Is(err, domain.ErrCustomerNotFound) {
				return nil, &InvoiceServiceError{Op: "get_customer", Err: err}
			}
			fields["customerId"] = "Please select a customer."
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &domain.Invoice{
		CustomerID: input.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(input.Status),
	}, nil
}

// parseAmount converts a dollar amount into cents. A non-empty message is
// returned when the amount is not a positive value with at most two decimals.
func parseAmount(raw string) (int64, string) {
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return 0, "Please enter an amount greater than $0."
	}

	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, "Amount can have at most two decimal places."
	}
	if cents.GreaterThan(maxAmountCents) {
		return 0, "Amount is too large."
	}

	return cents.IntPart(), ""
}
