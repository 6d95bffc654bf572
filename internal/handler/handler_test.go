package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/metrics"
	"github.com/ridwanfathin/invoice-dashboard/internal/middleware"
	"github.com/ridwanfathin/invoice-dashboard/internal/model"
	"github.com/ridwanfathin/invoice-dashboard/internal/repository/mocks"
	"github.com/ridwanfathin/invoice-dashboard/internal/service"
	"github.com/ridwanfathin/invoice-dashboard/internal/ui"
)

const (
	leeID     = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
	delbaID   = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	invoiceID = "76d65c26-f784-44a2-ac19-586678f7c2f2"
)

type testEnv struct {
	router    *gin.Engine
	invoices  *mocks.MockInvoiceRepository
	customers *mocks.MockCustomerRepository
	metrics   *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLogger(t, zerolog.Nop())
}

func newTestEnvWithLogger(t *testing.T, logger zerolog.Logger) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	clock := func() time.Time { return time.Date(2023, 6, 17, 0, 0, 0, 0, time.UTC) }
	svc := service.NewInvoiceService(invoices, customers, 6, service.WithClock(clock))
	m := metrics.New()

	tmpl, err := ui.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.RequestID(), middleware.ErrorBoundary(logger))
	NewDashboardHandler(svc, m, logger).RegisterRoutes(router)
	NewInvoiceHandler(svc, m, logger).RegisterRoutes(router)

	return &testEnv{router: router, invoices: invoices, customers: customers, metrics: m}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func records() []domain.InvoiceRecord {
	return []domain.InvoiceRecord{
		{
			ID: invoiceID, Name: "Lee Robinson", Email: "lee@robinson.com",
			ImageURL: "/customers/lee-robinson.png", Amount: 100050,
			Date:   domain.NewDateOnly(time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC)),
			Status: domain.InvoiceStatusPending,
		},
		{
			ID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", Name: "Delba de Oliveira", Email: "delba@oliveira.com",
			ImageURL: "/customers/delba-de-oliveira.png", Amount: 20348,
			Date:   domain.NewDateOnly(time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC)),
			Status: domain.InvoiceStatusPaid,
		},
	}
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func TestRootRedirects(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestListInvoicesPage(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().FetchFilteredInvoices(gomock.Any(), "lee", 2, 6).Return(records(), nil).Times(1)
	env.invoices.EXPECT().FetchInvoicesPages(gomock.Any(), "lee", 6).Return(3, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=lee&page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w)
	compact := doc.Find("div.invoices-compact > div[data-invoice-id]")
	tabular := doc.Find("table.invoices-table tbody > tr[data-invoice-id]")
	assert.Equal(t, 2, compact.Length())
	assert.Equal(t, 2, tabular.Length())

	first, _ := tabular.First().Attr("data-invoice-id")
	assert.Equal(t, invoiceID, first)
	assert.Equal(t, "$1,000.50", tabular.First().Find(".amount").Text())
	assert.Equal(t, "2", doc.Find(".pagination .current").Text())
}

func TestListInvoicesBadPageFallsBackToFirst(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3"} {
		t.Run(raw, func(t *testing.T) {
			env := newTestEnv(t)
			env.invoices.EXPECT().FetchFilteredInvoices(gomock.Any(), "", 1, 6).Return([]domain.InvoiceRecord{}, nil)
			env.invoices.EXPECT().FetchInvoicesPages(gomock.Any(), "", 6).Return(0, nil)

			w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?page="+raw, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 0, parseHTML(t, w).Find("[data-invoice-id]").Length())
		})
	}
}

func TestListInvoicesFetchFailureRendersErrorPage(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().FetchFilteredInvoices(gomock.Any(), "", 1, 6).Return(nil, errors.New("connection refused"))

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, 1, doc.Find(".error-page").Length())
	assert.Equal(t, 0, doc.Find("[data-invoice-id]").Length())
}

func TestListInvoicesDuplicateIDRendersErrorPage(t *testing.T) {
	env := newTestEnv(t)
	recs := records()
	recs[1].ID = recs[0].ID
	env.invoices.EXPECT().FetchFilteredInvoices(gomock.Any(), "", 1, 6).Return(recs, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOverview(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().FetchCardData(gomock.Any()).Return(&domain.CardData{NumberOfInvoices: 13, NumberOfCustomers: 6, TotalPaid: 100050}, nil)
	env.invoices.EXPECT().FetchLatestInvoices(gomock.Any(), service.LatestInvoicesLimit).Return(records(), nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, "$1,000.50", doc.Find(`[data-card="collected"] .value`).Text())
	assert.Equal(t, 2, doc.Find(".latest-invoice").Length())
}

func TestCreateInvoiceForm(t *testing.T) {
	env := newTestEnv(t)
	env.customers.EXPECT().ListCustomers(gomock.Any()).Return([]domain.Customer{{ID: leeID, Name: "Lee Robinson"}}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices/create", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, parseHTML(t, w).Find("select#customerId option").Length())
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreateInvoiceSubmit(t *testing.T) {
	env := newTestEnv(t)
	env.customers.EXPECT().GetCustomerByID(gomock.Any(), leeID).Return(&domain.Customer{ID: leeID}, nil)
	env.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			assert.Equal(t, int64(4250), inv.Amount)
			assert.Equal(t, "2023-06-17", inv.Date.String())
			inv.ID = invoiceID
			return inv, nil
		})

	w := env.do(postForm("/dashboard/invoices", url.Values{
		"customerId": {leeID}, "amount": {"42.50"}, "status": {"pending"},
	}))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
}

func TestCreateInvoiceSubmitShowsValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	env.customers.EXPECT().GetCustomerByID(gomock.Any(), leeID).Return(&domain.Customer{ID: leeID}, nil)
	env.customers.EXPECT().ListCustomers(gomock.Any()).Return([]domain.Customer{{ID: leeID, Name: "Lee Robinson"}}, nil)

	w := env.do(postForm("/dashboard/invoices", url.Values{
		"customerId": {leeID}, "amount": {"0"}, "status": {"paid"},
	}))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, 1, doc.Find(`.field-error[data-field="amount"]`).Length())
	assert.Equal(t, "Lee Robinson", doc.Find("option[selected]").Text())
}

func TestCreateInvoiceSubmitLogsRejectedFields(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnvWithLogger(t, zerolog.New(&buf))
	env.customers.EXPECT().GetCustomerByID(gomock.Any(), leeID).Return(&domain.Customer{ID: leeID}, nil)
	env.customers.EXPECT().ListCustomers(gomock.Any()).Return([]domain.Customer{{ID: leeID, Name: "Lee Robinson"}}, nil)

	w := env.do(postForm("/dashboard/invoices", url.Values{
		"customerId": {leeID}, "amount": {"1.005"}, "status": {"paid"},
	}))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "invoice form rejected", entry["message"])
	assert.Equal(t, "create_invoice", entry["op"])
	assert.NotEmpty(t, entry["request_id"])
	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Amount can have at most two decimal places.", fields["amount"])
}

func TestEditInvoiceFormNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().GetInvoiceByID(gomock.Any(), "missing").Return(nil, domain.ErrInvoiceNotFound)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/invoices/missing/edit", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404 Not Found")
}

func TestUpdateInvoiceSubmit(t *testing.T) {
	env := newTestEnv(t)
	env.customers.EXPECT().GetCustomerByID(gomock.Any(), delbaID).Return(&domain.Customer{ID: delbaID}, nil)
	env.invoices.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			assert.Equal(t, invoiceID, inv.ID)
			return inv, nil
		})

	w := env.do(postForm("/dashboard/invoices/"+invoiceID, url.Values{
		"customerId": {delbaID}, "amount": {"10"}, "status": {"paid"},
	}))
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestDeleteInvoiceSubmit(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().DeleteInvoice(gomock.Any(), invoiceID).Return(nil)

	w := env.do(httptest.NewRequest(http.MethodPost, "/dashboard/invoices/"+invoiceID+"/delete", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
}

func TestListCustomersPage(t *testing.T) {
	env := newTestEnv(t)
	env.customers.EXPECT().FetchFilteredCustomers(gomock.Any(), "lee").Return([]domain.CustomerSummary{
		{Customer: domain.Customer{ID: leeID, Name: "Lee Robinson"}, TotalInvoices: 2},
	}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/customers?query=lee", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, parseHTML(t, w).Find("tr[data-customer-id]").Length())
}

func TestAPIListInvoices(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().FetchFilteredInvoices(gomock.Any(), "", 1, 6).Return(records(), nil)
	env.invoices.EXPECT().FetchInvoicesPages(gomock.Any(), "", 6).Return(1, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.InvoicesListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, invoiceID, resp.Data[0].ID)
	assert.Equal(t, "$1,000.50", resp.Data[0].AmountFormatted)
	assert.Equal(t, "2022-12-06", resp.Data[0].Date)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
	assert.Equal(t, 6, resp.Pagination.Limit)
}

func TestAPIListInvoicesBadPage(t *testing.T) {
	env := newTestEnv(t)

	for _, raw := range []string{"abc", "0"} {
		w := env.do(httptest.NewRequest(http.MethodGet, "/v1/invoices?page="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "page", resp.Details[0].Field)
	}
}

func TestAPIGetInvoice(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(&domain.Invoice{
		ID: invoiceID, CustomerID: leeID, Amount: 15795, Status: domain.InvoiceStatusPaid,
		Date: domain.NewDateOnly(time.Date(2023, 6, 17, 0, 0, 0, 0, time.UTC)),
	}, nil)
	env.invoices.EXPECT().GetInvoiceByID(gomock.Any(), "missing").Return(nil, domain.ErrInvoiceNotFound)

	w := env.do(httptest.NewRequest(http.MethodGet, "/v1/invoices/"+invoiceID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "$157.95", resp.AmountFormatted)

	w = env.do(httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPICreateInvoiceValidation(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices", strings.NewReader(`{"customerId":"nope","amount":"1.234","status":"overdue"}`))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"amount", "customerId", "status"}, fields)
}

func TestAPICreateInvoiceMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIDeleteInvoice(t *testing.T) {
	env := newTestEnv(t)
	env.invoices.EXPECT().DeleteInvoice(gomock.Any(), invoiceID).Return(nil)
	env.invoices.EXPECT().DeleteInvoice(gomock.Any(), "missing").Return(domain.ErrInvoiceNotFound)

	w := env.do(httptest.NewRequest(http.MethodDelete, "/v1/invoices/"+invoiceID, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(httptest.NewRequest(http.MethodDelete, "/v1/invoices/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
