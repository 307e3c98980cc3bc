package parasut

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/emrerecber/exportiq360/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParasut struct {
	tokenRequests   atomic.Int64
	contactRequests atomic.Int64
	invoiceRequests atomic.Int64

	tokenExpiresIn int
	existingTaxNo  string
}

func (f *fakeParasut) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenRequests.Add(1)
		if err := r.ParseForm(); err != nil || r.PostFormValue("grant_type") != "password" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": fmt.Sprintf("token-%d", f.tokenRequests.Load()),
			"token_type":   "bearer",
			"expires_in":   f.tokenExpiresIn,
		})
	})

	mux.HandleFunc("/v4/company-1/contacts", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer token-") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.contactRequests.Add(1)

		if r.Method == http.MethodGet {
			data := []map[string]interface{}{}
			if f.existingTaxNo != "" && r.URL.Query().Get("filter[tax_number]") == f.existingTaxNo {
				data = append(data, map[string]interface{}{"id": "contact-existing", "type": "contacts"})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"id": "contact-new", "type": "contacts"},
		})
	})

	mux.HandleFunc("/v4/company-1/sales_invoices", func(w http.ResponseWriter, r *http.Request) {
		f.invoiceRequests.Add(1)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id":         "invoice-7",
				"type":       "sales_invoices",
				"attributes": map[string]interface{}{"invoice_no": "EIQ-2025-7"},
			},
		})
	})

	mux.HandleFunc("/v4/company-1/sales_invoices/invoice-7/email", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

func newTestClient(t *testing.T, fake *fakeParasut) *Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:      srv.URL + "/v4",
		AuthURL:      srv.URL + "/oauth/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Username:     "billing@example.com",
		Password:     "pw",
		CompanyID:    "company-1",
	}, logger.NewNop())
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewClient(Config{}, logger.NewNop()).IsConfigured())
	assert.True(t, NewClient(Config{
		ClientID: "a", ClientSecret: "b", CompanyID: "c",
	}, logger.NewNop()).IsConfigured())
}

func TestTokenCachedAcrossCalls(t *testing.T) {
	fake := &fakeParasut{tokenExpiresIn: 7200}
	client := newTestClient(t, fake)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.FindOrCreateContact(ctx, CustomerInfo{Name: "Acme", Email: "a@acme.com"})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), fake.tokenRequests.Load())
}

func TestTokenRefreshedWhenExpiring(t *testing.T) {
	// expires_in below the refresh skew forces a new token per request
	fake := &fakeParasut{tokenExpiresIn: 30}
	client := newTestClient(t, fake)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := client.FindOrCreateContact(ctx, CustomerInfo{Name: "Acme", Email: "a@acme.com"})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(2), fake.tokenRequests.Load())
}

func TestFindOrCreateContact(t *testing.T) {
	t.Run("reuses the contact matching the tax number", func(t *testing.T) {
		fake := &fakeParasut{tokenExpiresIn: 7200, existingTaxNo: "1234567890"}
		client := newTestClient(t, fake)

		id, err := client.FindOrCreateContact(context.Background(), CustomerInfo{
			Name: "Acme", Email: "a@acme.com", TaxNumber: "1234567890",
		})
		require.NoError(t, err)
		assert.Equal(t, "contact-existing", id)
	})

	t.Run("creates when nothing matches", func(t *testing.T) {
		fake := &fakeParasut{tokenExpiresIn: 7200}
		client := newTestClient(t, fake)

		id, err := client.FindOrCreateContact(context.Background(), CustomerInfo{
			Name: "Acme", Email: "a@acme.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "contact-new", id)
	})
}

func TestCreateInvoice(t *testing.T) {
	fake := &fakeParasut{tokenExpiresIn: 7200}
	client := newTestClient(t, fake)

	result := client.CreateInvoice(context.Background(), InvoiceInput{
		Customer: CustomerInfo{Name: "Acme", Email: "a@acme.com"},
		Items: []InvoiceItem{
			{Description: "Combined plan", Quantity: 1, UnitPrice: 1000},
		},
	})

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, "invoice-7", result.InvoiceID)
	assert.Equal(t, "EIQ-2025-7", result.InvoiceNumber)
	assert.Contains(t, result.InvoiceURL, "company-1")
	// 1000 plus the default 20% VAT
	assert.Equal(t, 1200.0, result.TotalAmount)
}

func TestCreateInvoiceReportsFailureInBody(t *testing.T) {
	// server with no routes: every call 404s
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:      srv.URL + "/v4",
		AuthURL:      srv.URL + "/oauth/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CompanyID:    "company-1",
	}, logger.NewNop())

	result := client.CreateInvoice(context.Background(), InvoiceInput{
		Customer: CustomerInfo{Name: "Acme", Email: "a@acme.com"},
		Items:    []InvoiceItem{{Description: "Plan", Quantity: 1, UnitPrice: 100}},
	})

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestSendInvoiceEmail(t *testing.T) {
	fake := &fakeParasut{tokenExpiresIn: 7200}
	client := newTestClient(t, fake)

	err := client.SendInvoiceEmail(context.Background(), "invoice-7", "a@acme.com")
	require.NoError(t, err)
}
