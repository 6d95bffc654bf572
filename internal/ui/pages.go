package ui

import (
	"strconv"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/format"
)

// Template names
const (
	TemplateDashboard   = "dashboard.html"
	TemplateInvoices    = "invoices.html"
	TemplateInvoiceForm = "invoice_form.html"
	TemplateCustomers   = "customers.html"
	TemplateError       = "error.html"
)

// Card is a summary figure on the dashboard overview
type Card struct {
	Title string
	Value string
	Kind  string
}

// LatestInvoiceRow is an entry of the latest invoices panel
type LatestInvoiceRow struct {
	Key      string
	Name     string
	Email    string
	ImageURL string
	ImageAlt string
	Amount   string
}

// DashboardPage is the overview page
type DashboardPage struct {
	Page
	Cards  []Card
	Latest []LatestInvoiceRow
}

// NewDashboardPage builds the overview page from the dashboard data
func NewDashboardPage(d *domain.Dashboard) DashboardPage {
	latest := make([]LatestInvoiceRow, 0, len(d.LatestInvoices))
	for _, rec := range d.LatestInvoices {
		latest = append(latest, LatestInvoiceRow{
			Key:      rec.ID,
			Name:     rec.Name,
			Email:    rec.Email,
			ImageURL: rec.ImageURL,
			ImageAlt: rec.Name + "'s profile picture",
			Amount:   format.FormatCurrency(rec.Amount),
		})
	}

	return DashboardPage{
		Page: NewPage("Dashboard", "/dashboard"),
		Cards: []Card{
			{Title: "Collected", Value: format.FormatCurrency(d.Cards.TotalPaid), Kind: "collected"},
			{Title: "Pending", Value: format.FormatCurrency(d.Cards.TotalPending), Kind: "pending"},
			{Title: "Total Invoices", Value: strconv.Itoa(d.Cards.NumberOfInvoices), Kind: "invoices"},
			{Title: "Total Customers", Value: strconv.Itoa(d.Cards.NumberOfCustomers), Kind: "customers"},
		},
		Latest: latest,
	}
}

// InvoicesPage is the searchable, paginated invoices list
type InvoicesPage struct {
	Page
	Query      string
	Create     LinkButton
	Table      *InvoicesTable
	Pagination Pagination
}

// NewInvoicesPage assembles the invoices list page
func NewInvoicesPage(query string, currentPage, totalPages int, table *InvoicesTable) InvoicesPage {
	return InvoicesPage{
		Page:       NewPage("Invoices", invoicesPath),
		Query:      query,
		Create:     CreateInvoiceButton(),
		Table:      table,
		Pagination: NewPagination(query, currentPage, totalPages),
	}
}

// InvoiceFormPage is the create and edit invoice form
type InvoiceFormPage struct {
	Page
	Action     string
	Submit     string
	Customers  []domain.Customer
	CustomerID string
	Amount     string
	Status     string
	Errors     map[string]string
}

// NewCreateInvoicePage builds an empty create form
func NewCreateInvoicePage(customers []domain.Customer) InvoiceFormPage {
	return InvoiceFormPage{
		Page:      NewPage("Create Invoice", invoicesPath+"/create"),
		Action:    invoicesPath,
		Submit:    "Create Invoice",
		Customers: customers,
		Errors:    map[string]string{},
	}
}

// NewEditInvoicePage builds an edit form prefilled with invoice
func NewEditInvoicePage(invoice *domain.Invoice, customers []domain.Customer) InvoiceFormPage {
	return InvoiceFormPage{
		Page:       NewPage("Edit Invoice", invoicesPath+"/"+invoice.ID+"/edit"),
		Action:     invoicesPath + "/" + invoice.ID,
		Submit:     "Edit Invoice",
		Customers:  customers,
		CustomerID: invoice.CustomerID,
		Amount:     format.FormatAmountInput(invoice.Amount),
		Status:     string(invoice.Status),
		Errors:     map[string]string{},
	}
}

// CustomerRow is an entry of the customers page
type CustomerRow struct {
	Key           string
	Name          string
	Email         string
	ImageURL      string
	ImageAlt      string
	TotalInvoices int
	TotalPending  string
	TotalPaid     string
}

// CustomersPage lists customers with their invoice totals
type CustomersPage struct {
	Page
	Query     string
	Customers []CustomerRow
}

// NewCustomersPage builds the customers page
func NewCustomersPage(query string, summaries []domain.CustomerSummary) CustomersPage {
	rows := make([]CustomerRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, CustomerRow{
			Key:           s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			ImageAlt:      s.Name + "'s profile picture",
			TotalInvoices: s.TotalInvoices,
			TotalPending:  format.FormatCurrency(s.TotalPending),
			TotalPaid:     format.FormatCurrency(s.TotalPaid),
		})
	}
	return CustomersPage{Page: NewPage("Customers", "/dashboard/customers"), Query: query, Customers: rows}
}

// ErrorPage is rendered when a request fails
type ErrorPage struct {
	Page
	StatusCode int
	Heading    string
	Message    string
}

// NewErrorPage builds the error page for statusCode
func NewErrorPage(path string, statusCode int) ErrorPage {
	p := ErrorPage{Page: NewPage("Error", path), StatusCode: statusCode}
	if statusCode == 404 {
		p.Heading = "404 Not Found"
		p.Message = "Could not find the requested invoice."
	} else {
		p.Heading = "Something went wrong!"
		p.Message = "The invoices could not be loaded. Please try again later."
	}
	return p
}
