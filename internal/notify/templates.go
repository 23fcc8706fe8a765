package notify

// Template is an email that knows its subject and template file.
type Template interface {
	Subject() string
	TemplateName() string
}

// ContributionLinkEmail asks one contributor to pay their share of a split.
type ContributionLinkEmail struct {
	To              string
	ContributorName string
	RequesterName   string
	PropertyName    string
	Amount          string // formatted, e.g. "$600.00"
	PaymentURL      string
	ExpiresOn       string
}

func (e ContributionLinkEmail) Subject() string {
	return "Your share of an invoice is ready to pay"
}

func (e ContributionLinkEmail) TemplateName() string {
	return "contribution_link.html"
}

// InvoiceEmail delivers an invoice and its payment link to the recipient.
type InvoiceEmail struct {
	To            string
	RecipientName string
	PropertyName  string
	Total         string
	DueOn         string
	Items         []InvoiceEmailItem
	PaymentURL    string
}

// InvoiceEmailItem is one formatted line item.
type InvoiceEmailItem struct {
	Description string
	Amount      string
}

func (e InvoiceEmail) Subject() string {
	return "New invoice due " + e.DueOn
}

func (e InvoiceEmail) TemplateName() string {
	return "invoice.html"
}
