package model

import (
	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/format"
)

// InvoiceRequest is the body of create and update requests. Amount is in
// dollars, e.g. "1000.50".
type InvoiceRequest struct {
	CustomerID string `json:"customerId" example:"3958dc9e-712f-4377-85e9-fec4b6a6442a"`
	Amount     string `json:"amount" example:"1000.50"`
	Status     string `json:"status" example:"pending" enums:"pending,paid"`
}

// InvoiceResponse represents a single stored invoice
type InvoiceResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Date            string `json:"date"`
	Status          string `json:"status"`
}

// InvoiceRecordResponse represents an invoice joined with its customer
type InvoiceRecordResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"imageUrl"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Date            string `json:"date"`
	DateFormatted   string `json:"dateFormatted"`
	Status          string `json:"status"`
}

// InvoicesListResponse represents a page of invoices
type InvoicesListResponse struct {
	Data       []InvoiceRecordResponse `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

// FromDomain converts a domain Invoice to an InvoiceResponse
func (r *InvoiceResponse) FromDomain(invoice *domain.Invoice) {
	r.ID = invoice.ID
	r.CustomerID = invoice.CustomerID
	r.Amount = invoice.Amount
	r.AmountFormatted = format.FormatCurrency(invoice.Amount)
	r.Date = invoice.Date.String()
	r.Status = string(invoice.Status)
}

// FromDomain converts a domain InvoiceRecord to an InvoiceRecordResponse
func (r *InvoiceRecordResponse) FromDomain(rec *domain.InvoiceRecord) {
	r.ID = rec.ID
	r.Name = rec.Name
	r.Email = rec.Email
	r.ImageURL = rec.ImageURL
	r.Amount = rec.Amount
	r.AmountFormatted = format.FormatCurrency(rec.Amount)
	r.Date = rec.Date.String()
	r.DateFormatted = format.FormatDateToLocal(rec.Date)
	r.Status = string(rec.Status)
}
