package domain

// Customer represents a customer invoices are issued to
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerSummary is a customer row on the customers page with invoice totals
type CustomerSummary struct {
	Customer
	TotalInvoices int   `json:"total_invoices"`
	TotalPending  int64 `json:"total_pending"`
	TotalPaid     int64 `json:"total_paid"`
}
