package ui

import "net/url"

const invoicesPath = "/dashboard/invoices"

// LinkButton is a control that navigates to Href
type LinkButton struct {
	Href  string
	Label string
}

// FormButton is a control that submits a POST form to Action
type FormButton struct {
	Action string
	Label  string
}

// CreateInvoiceButton links to the create invoice form
func CreateInvoiceButton() LinkButton {
	return LinkButton{Href: invoicesPath + "/create", Label: "Create Invoice"}
}

// UpdateInvoiceButton links to the edit form of invoice id
func UpdateInvoiceButton(id string) LinkButton {
	return LinkButton{Href: invoicesPath + "/" + url.PathEscape(id) + "/edit", Label: "Edit"}
}

// DeleteInvoiceButton posts to the delete route of invoice id
func DeleteInvoiceButton(id string) FormButton {
	return FormButton{Action: invoicesPath + "/" + url.PathEscape(id) + "/delete", Label: "Delete"}
}
