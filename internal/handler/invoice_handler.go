package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/metrics"
	"github.com/ridwanfathin/invoice-dashboard/internal/model"
	"github.com/ridwanfathin/invoice-dashboard/internal/service"
)

// InvoiceHandler serves the JSON invoice API
type InvoiceHandler struct {
	invoices service.InvoiceService
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewInvoiceHandler creates a new invoice API handler
func NewInvoiceHandler(invoices service.InvoiceService, m *metrics.Metrics, logger zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		metrics:  m,
		logger:   logger,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1/invoices")
	v1.GET("", h.ListInvoices)
	v1.POST("", h.CreateInvoice)
	v1.GET("/:invoiceId", h.GetInvoice)
	v1.PUT("/:invoiceId", h.UpdateInvoice)
	v1.DELETE("/:invoiceId", h.DeleteInvoice)
}

// ListInvoices handles the GET /v1/invoices endpoint
// @Summary List invoices
// @Description Get a page of invoices joined with their customer, newest first, optionally filtered by a search query
// @Tags invoices
// @Accept json
// @Produce json
// @Param query query string false "Search on customer name, email, amount, date or status"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} model.InvoicesListResponse "Page of invoices"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	query := getQueryString(c, "query")

	page, err := getQueryInt(c, "page", 1)
	if err == nil {
		err = validatePage(page)
	}
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("page", err.Error()))
		return
	}

	records, err := h.invoices.FetchFilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		h.metrics.FetchFailed()
		logError(h.logger, c, "list_invoices", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	totalPages, err := h.invoices.FetchInvoicesPages(c.Request.Context(), query)
	if err != nil {
		logError(h.logger, c, "count_invoice_pages", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	data := make([]model.InvoiceRecordResponse, len(records))
	for i := range records {
		data[i].FromDomain(&records[i])
	}

	respondOK(c, model.InvoicesListResponse{
		Data: data,
		Pagination: model.PaginationResponse{
			TotalPages:  totalPages,
			CurrentPage: page,
			Limit:       h.invoices.PageSize(),
		},
	})
}

// GetInvoice handles the GET /v1/invoices/{invoiceId} endpoint
// @Summary Get an invoice by ID
// @Description Retrieve a specific invoice by its ID
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} model.InvoiceResponse "Invoice details"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoices.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondServiceError(c, "get_invoice", err)
		return
	}

	var resp model.InvoiceResponse
	resp.FromDomain(invoice)
	respondOK(c, resp)
}

// CreateInvoice handles the POST /v1/invoices endpoint
// @Summary Create an invoice
// @Description Create an invoice dated today for an existing customer
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.InvoiceRequest true "Invoice data"
// @Success 201 {object} model.InvoiceResponse "Invoice created successfully"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.InvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	invoice, err := h.invoices.CreateInvoice(c.Request.Context(), toInvoiceInput(req))
	if err != nil {
		h.respondServiceError(c, "create_invoice", err)
		return
	}

	var resp model.InvoiceResponse
	resp.FromDomain(invoice)
	respondCreated(c, resp)
}

// UpdateInvoice handles the PUT /v1/invoices/{invoiceId} endpoint
// @Summary Update an invoice
// @Description Update the customer, amount and status of an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param invoice body model.InvoiceRequest true "Updated invoice data"
// @Success 200 {object} model.InvoiceResponse "Invoice updated successfully"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.InvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	invoice, err := h.invoices.UpdateInvoice(c.Request.Context(), invoiceID, toInvoiceInput(req))
	if err != nil {
		h.respondServiceError(c, "update_invoice", err)
		return
	}

	var resp model.InvoiceResponse
	resp.FromDomain(invoice)
	respondOK(c, resp)
}

// DeleteInvoice handles the DELETE /v1/invoices/{invoiceId} endpoint
// @Summary Delete an invoice
// @Description Delete an invoice by ID
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 204 "Invoice deleted successfully"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{invoiceId} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.invoices.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		h.respondServiceError(c, "delete_invoice", err)
		return
	}

	respondNoContent(c)
}

// respondServiceError maps service errors onto API responses
func (h *InvoiceHandler) respondServiceError(c *gin.Context, op string, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondUnprocessableEntity(c, ErrInvalidInput, buildValidationErrors(validationErr.Fields)...)
	case errors.Is(err, domain.ErrInvoiceNotFound):
		respondNotFound(c, ErrInvoiceNotFound)
	default:
		logError(h.logger, c, op, err)
		respondInternalServerError(c, ErrInternalServer)
	}
}

func toInvoiceInput(req model.InvoiceRequest) service.InvoiceInput {
	return service.InvoiceInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     req.Status,
	}
}
