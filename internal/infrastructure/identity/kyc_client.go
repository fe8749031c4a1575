package identity

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"fantera.backend/internal/domain/entities"
)

// KYCInitiationResult is the provider's response to starting verification
type KYCInitiationResult struct {
	ProviderUserID null.String
}

// KYCStatusResult is the provider's current view of a user's verification
type KYCStatusResult struct {
	Status         string
	ProviderUserID null.String
}

// KYCClient is the identity-provider KYC capability
type KYCClient interface {
	InitiateKYC(ctx context.Context, privyUserID string, data *entities.KYCSubmitInput) (*KYCInitiationResult, error)
	GetKYCStatus(ctx context.Context, privyUserID string) (*KYCStatusResult, error)
}

// PrivyKYCClient talks to Privy's fiat KYC endpoints
type PrivyKYCClient struct {
	appID      string
	appSecret  string
	provider   string
	baseURL    string
	httpClient *http.Client
}

// NewPrivyKYCClient creates a new Privy KYC client
func NewPrivyKYCClient(appID, appSecret, provider, baseURL string) *PrivyKYCClient {
	return &PrivyKYCClient{
		appID:      appID,
		appSecret:  appSecret,
		provider:   provider,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *PrivyKYCClient) authHeaders(req *http.Request) {
	basic := base64.StdEncoding.EncodeToString([]byte(c.appID + ":" + c.appSecret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("privy-app-id", c.appID)
	req.Header.Set("Authorization", "Basic "+basic)
}

// InitiateKYC starts verification for a user with the configured provider
func (c *PrivyKYCClient) InitiateKYC(ctx context.Context, privyUserID string, data *entities.KYCSubmitInput) (*KYCInitiationResult, error) {
	payload := map[string]interface{}{
		"provider": c.provider,
		"data": map[string]interface{}{
			"type":       "individual",
			"first_name": data.FirstName,
			"last_name":  data.LastName,
			"email":      data.Email,
			"residential_address": map[string]interface{}{
				"street_line_1": data.StreetAddress,
				"city":          data.City,
				"subdivision":   data.State,
				"postal_code":   data.PostalCode,
				"country":       data.Country,
			},
			"birth_date": data.DateOfBirth,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/users/%s/fiat/kyc", c.baseURL, privyUserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.authHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("kyc initiation failed: status %d", resp.StatusCode)
	}

	var result struct {
		ProviderUserID *string `json:"provider_user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &KYCInitiationResult{ProviderUserID: null.StringFromPtr(result.ProviderUserID)}, nil
}

// GetKYCStatus fetches the provider's current verification status. A 404
// means the provider has never seen this user and maps to "not_found".
func (c *PrivyKYCClient) GetKYCStatus(ctx context.Context, privyUserID string) (*KYCStatusResult, error) {
	endpoint := fmt.Sprintf("%s/users/%s/fiat/kyc?provider=%s", c.baseURL, privyUserID, c.provider)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.authHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &KYCStatusResult{Status: "not_found"}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kyc status check failed: status %d", resp.StatusCode)
	}

	var result struct {
		Status         string  `json:"status"`
		ProviderUserID *string `json:"provider_user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &KYCStatusResult{
		Status:         result.Status,
		ProviderUserID: null.StringFromPtr(result.ProviderUserID),
	}, nil
}
