package parasut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/emrerecber/exportiq360/internal/logger"
)

const (
	defaultBaseURL = "https://api.parasut.com/v4"
	defaultAuthURL = "https://api.parasut.com/oauth/token"

	// refresh the cached token this long before it expires
	tokenExpirySkew = 60 * time.Second
)

type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	CompanyID    string
}

// Client talks to the Paraşüt accounting API. The OAuth access token is
// cached with its expiry and refreshed on demand; there is no hidden
// global state.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

func (c *Client) IsConfigured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.CompanyID != ""
}

// accessToken returns the cached token, fetching a new one when the
// cached one is missing or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySkew)) {
		return c.token, nil
	}

	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"username":      {c.cfg.Username},
		"password":      {c.cfg.Password},
		"grant_type":    {"password"},
		"redirect_uri":  {"urn:ietf:wg:oauth:2.0:oob"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}

	expiresIn := token.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 7200
	}
	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	c.log.Debug("parasut token refreshed", "expires_in", expiresIn)

	return c.token, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	}

	reqURL := fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.CompanyID, endpoint)
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("parasut returned status %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
	}
	return nil
}

// FindOrCreateContact looks up a contact by tax number or email and
// creates one when no match exists.
func (c *Client) FindOrCreateContact(ctx context.Context, customer CustomerInfo) (string, error) {
	var filter string
	if customer.TaxNumber != "" {
		filter = "contacts?filter[tax_number]=" + url.QueryEscape(customer.TaxNumber)
	} else if customer.Email != "" {
		filter = "contacts?filter[email]=" + url.QueryEscape(customer.Email)
	}

	if filter != "" {
		var found listDocument
		if err := c.do(ctx, http.MethodGet, filter, nil, &found); err == nil && len(found.Data) > 0 {
			return found.Data[0].ID, nil
		}
	}

	contactType := "person"
	if customer.TaxNumber != "" {
		contactType = "company"
	}
	country := customer.Country
	if country == "" {
		country = "TR"
	}

	payload := singleDocument{Data: resource{
		Type: "contacts",
		Attributes: map[string]interface{}{
			"contact_type": contactType,
			"name":         customer.Name,
			"email":        customer.Email,
			"tax_office":   customer.TaxOffice,
			"tax_number":   customer.TaxNumber,
			"city":         customer.City,
			"address":      customer.Address,
			"country":      country,
		},
	}}

	var created singleDocument
	if err := c.do(ctx, http.MethodPost, "contacts", payload, &created); err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}
	return created.Data.ID, nil
}

// CreateInvoice creates a sales invoice for the customer. Failures are
// reported in the result rather than as an error so webhook callers can
// log and continue.
func (c *Client) CreateInvoice(ctx context.Context, input InvoiceInput) *InvoiceResult {
	contactID, err := c.FindOrCreateContact(ctx, input.Customer)
	if err != nil {
		return &InvoiceResult{Success: false, Error: err.Error()}
	}

	details := make([]resource, 0, len(input.Items))
	for _, item := range input.Items {
		vatRate := item.VATRate
		if vatRate == 0 {
			vatRate = 20
		}
		details = append(details, resource{
			Type: "sales_invoice_details",
			Attributes: map[string]interface{}{
				"description": item.Description,
				"quantity":    item.Quantity,
				"unit_price":  item.UnitPrice,
				"vat_rate":    vatRate,
			},
		})
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate == "" {
		invoiceDate = time.Now().Format("2006-01-02")
	}
	dueDate := input.DueDate
	if dueDate == "" {
		dueDate = time.Now().AddDate(0, 0, 15).Format("2006-01-02")
	}
	currency := input.Currency
	if currency == "" {
		currency = "TRY"
	}
	notes := input.Notes
	if notes == "" {
		notes = "ExportIQ 360 Assessment Paketi"
	}

	payload := singleDocument{Data: resource{
		Type: "sales_invoices",
		Attributes: map[string]interface{}{
			"item_type":       "invoice",
			"description":     notes,
			"issue_date":      invoiceDate,
			"due_date":        dueDate,
			"currency":        currency,
			"billing_address": input.Customer.Address,
			"billing_city":    input.Customer.City,
		},
		Relationships: map[string]interface{}{
			"contact": map[string]interface{}{
				"data": map[string]string{"type": "contacts", "id": contactID},
			},
			"details": map[string]interface{}{
				"data": details,
			},
		},
	}}

	var created singleDocument
	if err := c.do(ctx, http.MethodPost, "sales_invoices", payload, &created); err != nil {
		return &InvoiceResult{Success: false, Error: err.Error()}
	}

	total := 0.0
	for _, item := range input.Items {
		vatRate := item.VATRate
		if vatRate == 0 {
			vatRate = 20
		}
		total += item.Quantity * item.UnitPrice * (1 + vatRate/100)
	}

	return &InvoiceResult{
		Success:       true,
		InvoiceID:     created.Data.ID,
		InvoiceNumber: fmt.Sprintf("%v", created.Data.Attributes["invoice_no"]),
		InvoiceURL: fmt.Sprintf("https://uygulama.parasut.com/%s/satislar/faturalar/%s",
			c.cfg.CompanyID, created.Data.ID),
		TotalAmount: math.Round(total*100) / 100,
	}
}

// SendInvoiceEmail asks Paraşüt to email the invoice to the customer.
func (c *Client) SendInvoiceEmail(ctx context.Context, invoiceID, email string) error {
	endpoint := fmt.Sprintf("sales_invoices/%s/email", invoiceID)
	payload := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, endpoint, payload, nil); err != nil {
		return fmt.Errorf("send invoice email: %w", err)
	}
	return nil
}
