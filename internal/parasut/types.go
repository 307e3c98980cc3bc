package parasut

// JSON:API envelopes for the Paraşüt v4 API.
// https://apidocs.parasut.com

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type resource struct {
	ID            string                 `json:"id,omitempty"`
	Type          string                 `json:"type"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Relationships map[string]interface{} `json:"relationships,omitempty"`
}

type singleDocument struct {
	Data resource `json:"data"`
}

type listDocument struct {
	Data []resource `json:"data"`
}

// CustomerInfo identifies the invoice recipient. TaxNumber present means
// a company contact, otherwise a person.
type CustomerInfo struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	TaxOffice string `json:"tax_office,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

type InvoiceItem struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	VATRate     float64 `json:"vat_rate"`
}

type InvoiceInput struct {
	Customer    CustomerInfo  `json:"customer" binding:"required"`
	Items       []InvoiceItem `json:"items" binding:"required,min=1"`
	InvoiceDate string        `json:"invoice_date,omitempty"`
	DueDate     string        `json:"due_date,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Currency    string        `json:"currency,omitempty"`
}

type InvoiceResult struct {
	Success       bool    `json:"success"`
	InvoiceID     string  `json:"invoice_id,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	InvoiceURL    string  `json:"invoice_url,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	Error         string  `json:"error,omitempty"`
}
