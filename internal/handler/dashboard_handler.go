package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/metrics"
	"github.com/ridwanfathin/invoice-dashboard/internal/middleware"
	"github.com/ridwanfathin/invoice-dashboard/internal/service"
	"github.com/ridwanfathin/invoice-dashboard/internal/ui"
)

const invoicesListPath = "/dashboard/invoices"

// DashboardHandler serves the HTML dashboard pages. Failures are attached to
// the context and rendered by middleware.ErrorBoundary.
type DashboardHandler struct {
	invoices service.InvoiceService
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(invoices service.InvoiceService, m *metrics.Metrics, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		invoices: invoices,
		metrics:  m,
		logger:   logger,
	}
}

// RegisterRoutes registers the dashboard pages with the given router
func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)

	dashboard := router.Group("/dashboard")
	dashboard.GET("", h.Overview)
	dashboard.GET("/invoices", h.ListInvoices)
	dashboard.GET("/invoices/create", h.CreateInvoiceForm)
	dashboard.POST("/invoices", h.CreateInvoice)
	dashboard.GET("/invoices/:invoiceId/edit", h.EditInvoiceForm)
	dashboard.POST("/invoices/:invoiceId", h.UpdateInvoice)
	dashboard.POST("/invoices/:invoiceId/delete", h.DeleteInvoice)
	dashboard.GET("/customers", h.ListCustomers)
}

// Root redirects to the dashboard overview
func (h *DashboardHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

// Overview renders the summary cards and the latest invoices
func (h *DashboardHandler) Overview(c *gin.Context) {
	dashboard, err := h.invoices.FetchDashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := ui.NewDashboardPage(dashboard)
	page.RequestID = c.GetString(middleware.RequestIDKey)
	c.HTML(http.StatusOK, ui.TemplateDashboard, page)
}

// ListInvoices renders one page of invoices for the query and page parameters
func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	query := getQueryString(c, "query")
	currentPage := parsePage(c)

	records, err := h.invoices.FetchFilteredInvoices(c.Request.Context(), query, currentPage)
	if err != nil {
		h.metrics.FetchFailed()
		_ = c.Error(err)
		return
	}

	table, err := ui.NewInvoicesTable(records)
	if err != nil {
		_ = c.Error(err)
		return
	}

	totalPages, err := h.invoices.FetchInvoicesPages(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.metrics.RowsRendered(table.Len())

	page := ui.NewInvoicesPage(query, currentPage, totalPages, table)
	page.RequestID = c.GetString(middleware.RequestIDKey)
	c.HTML(http.StatusOK, ui.TemplateInvoices, page)
}

// CreateInvoiceForm renders the empty create form
func (h *DashboardHandler) CreateInvoiceForm(c *gin.Context) {
	customers, err := h.invoices.ListCustomers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.renderForm(c, http.StatusOK, ui.NewCreateInvoicePage(customers))
}

// CreateInvoice stores a submitted invoice and returns to the list
func (h *DashboardHandler) CreateInvoice(c *gin.Context) {
	var input service.InvoiceInput
	if err := c.ShouldBind(&input); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.invoices.CreateInvoice(c.Request.Context(), input); err != nil {
		var validationErr *service.ValidationError
		if !errors.As(err, &validationErr) {
			_ = c.Error(err)
			return
		}

		h.logRejected(c, "create_invoice", validationErr)

		customers, err := h.invoices.ListCustomers(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		page := ui.NewCreateInvoicePage(customers)
		fillForm(&page, input, validationErr)
		h.renderForm(c, http.StatusUnprocessableEntity, page)
		return
	}

	c.Redirect(http.StatusSeeOther, invoicesListPath)
}

// EditInvoiceForm renders the edit form for an existing invoice
func (h *DashboardHandler) EditInvoiceForm(c *gin.Context) {
	invoiceID := c.Param("invoiceId")

	invoice, err := h.invoices.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	customers, err := h.invoices.ListCustomers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.renderForm(c, http.StatusOK, ui.NewEditInvoicePage(invoice, customers))
}

// UpdateInvoice saves a submitted edit and returns to the list
func (h *DashboardHandler) UpdateInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceId")

	var input service.InvoiceInput
	if err := c.ShouldBind(&input); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.invoices.UpdateInvoice(c.Request.Context(), invoiceID, input); err != nil {
		var validationErr *service.ValidationError
		if !errors.As(err, &validationErr) {
			_ = c.Error(err)
			return
		}

		h.logRejected(c, "update_invoice", validationErr)

		customers, err := h.invoices.ListCustomers(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		page := ui.NewEditInvoicePage(&domain.Invoice{ID: invoiceID}, customers)
		fillForm(&page, input, validationErr)
		h.renderForm(c, http.StatusUnprocessableEntity, page)
		return
	}

	c.Redirect(http.StatusSeeOther, invoicesListPath)
}

// DeleteInvoice removes an invoice and returns to the list
func (h *DashboardHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoices.DeleteInvoice(c.Request.Context(), c.Param("invoiceId")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusSeeOther, invoicesListPath)
}

// ListCustomers renders the customers matching the query parameter
func (h *DashboardHandler) ListCustomers(c *gin.Context) {
	query := getQueryString(c, "query")

	customers, err := h.invoices.FetchFilteredCustomers(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := ui.NewCustomersPage(query, customers)
	page.RequestID = c.GetString(middleware.RequestIDKey)
	c.HTML(http.StatusOK, ui.TemplateCustomers, page)
}

func (h *DashboardHandler) renderForm(c *gin.Context, status int, page ui.InvoiceFormPage) {
	page.RequestID = c.GetString(middleware.RequestIDKey)
	c.HTML(status, ui.TemplateInvoiceForm, page)
}

// logRejected records a form submission that failed validation. These never
// reach the error boundary since the form is re-rendered with a 422.
func (h *DashboardHandler) logRejected(c *gin.Context, op string, validationErr *service.ValidationError) {
	fields := zerolog.Dict()
	for field, msg := range validationErr.Fields {
		fields.Str(field, msg)
	}
	h.logger.Info().
		Str("op", op).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Dict("fields", fields).
		Msg("invoice form rejected")
}

// fillForm restores the submitted values and the validation messages
func fillForm(page *ui.InvoiceFormPage, input service.InvoiceInput, validationErr *service.ValidationError) {
	page.CustomerID = input.CustomerID
	page.Amount = input.Amount
	page.Status = input.Status
	page.Errors = validationErr.Fields
}
