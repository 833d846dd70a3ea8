package model

// TicketPlaceholder is embedded once in every rendered document. The mail
// dispatcher replaces its first occurrence with the ticket reference, so the
// renderer and the dispatcher must agree on this value.
const TicketPlaceholder = "- - -"

// Document is the rendered report.
type Document struct {
	Subject string
	Body    string
}

// Email is a message handed to the mail dispatcher. Recipient may hold
// several comma-separated addresses.
type Email struct {
	Recipient string
	Subject   string
	Body      string
	HTML      bool
	TicketID  string
}
