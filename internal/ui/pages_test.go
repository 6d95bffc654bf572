package ui

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, name string, data interface{}) *goquery.Document {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestInvoicesPageRenders(t *testing.T) {
	table, err := NewInvoicesTable(sampleRecords())
	require.NoError(t, err)

	doc := renderPage(t, TemplateInvoices, NewInvoicesPage("lee", 2, 3, table))

	assert.Equal(t, "Invoices | Invoice Dashboard", doc.Find("title").Text())
	assert.Equal(t, "Invoices", doc.Find(".side-nav a.active").Text())
	value, _ := doc.Find("input#query").Attr("value")
	assert.Equal(t, "lee", value)
	assert.Equal(t, 3, doc.Find("table.invoices-table tbody > tr").Length())
	assert.Equal(t, "2", doc.Find(".pagination .current").Text())
	href, _ := doc.Find(".pagination a.next").Attr("href")
	assert.Equal(t, "/dashboard/invoices?page=3&query=lee", href)
}

func TestDashboardPageRenders(t *testing.T) {
	page := NewDashboardPage(&domain.Dashboard{
		Cards:          domain.CardData{NumberOfInvoices: 13, NumberOfCustomers: 6, TotalPaid: 100050, TotalPending: 5},
		LatestInvoices: sampleRecords()[:2],
	})

	doc := renderPage(t, TemplateDashboard, page)
	assert.Equal(t, "$1,000.50", doc.Find(`[data-card="collected"] .value`).Text())
	assert.Equal(t, "13", doc.Find(`[data-card="invoices"] .value`).Text())
	assert.Equal(t, 2, doc.Find(".latest-invoice").Length())
}

func TestInvoiceFormPageRendersErrorsAndSelection(t *testing.T) {
	customers := []domain.Customer{
		{ID: "c1", Name: "Lee Robinson"},
		{ID: "c2", Name: "Delba de Oliveira"},
	}
	page := NewEditInvoicePage(&domain.Invoice{ID: "inv-1", CustomerID: "c2", Amount: 15795, Status: domain.InvoiceStatusPaid}, customers)
	page.Errors["amount"] = "Please enter an amount greater than $0."

	doc := renderPage(t, TemplateInvoiceForm, page)

	action, _ := doc.Find("form.invoice-form").Attr("action")
	assert.Equal(t, "/dashboard/invoices/inv-1", action)
	assert.Equal(t, "Delba de Oliveira", doc.Find("option[selected]").Text())
	value, _ := doc.Find("input#amount").Attr("value")
	assert.Equal(t, "157.95", value)
	checked, _ := doc.Find("input[name=status][checked]").Attr("value")
	assert.Equal(t, "paid", checked)
	assert.Equal(t, "Please enter an amount greater than $0.", doc.Find(`.field-error[data-field="amount"]`).Text())
	assert.Equal(t, 0, doc.Find(`.field-error[data-field="status"]`).Length())
}

func TestErrorPage(t *testing.T) {
	doc := renderPage(t, TemplateError, NewErrorPage("/dashboard/invoices", 404))
	assert.Equal(t, "404 Not Found", doc.Find(".error-page h2").Text())

	doc = renderPage(t, TemplateError, NewErrorPage("/dashboard/invoices", 500))
	assert.Equal(t, "Something went wrong!", doc.Find(".error-page h2").Text())
}

func TestCustomersPageRenders(t *testing.T) {
	page := NewCustomersPage("", []domain.CustomerSummary{
		{Customer: domain.Customer{ID: "c1", Name: "Lee Robinson"}, TotalInvoices: 2, TotalPending: 100, TotalPaid: 0},
	})
	doc := renderPage(t, TemplateCustomers, page)
	assert.Equal(t, 1, doc.Find("tr[data-customer-id]").Length())
	assert.Equal(t, "Customers", doc.Find(".side-nav a.active").Text())
}
