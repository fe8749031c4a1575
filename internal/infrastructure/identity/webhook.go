package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Svix-style webhook verification: the signing secret is base64 after the
// "whsec_" prefix, the signed content is "{id}.{timestamp}.{body}" and the
// signature header carries space-delimited "v1,<base64>" entries.

var (
	ErrInvalidWebhook = errors.New("invalid webhook")
	ErrWebhookTooOld  = errors.New("webhook timestamp outside tolerance")
	ErrMissingSecret  = errors.New("webhook signing secret not configured")
)

const webhookTolerance = 5 * time.Minute

// LinkedAccount is one account linked to an identity-provider user
type LinkedAccount struct {
	Type    string `json:"type"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Name    string `json:"name,omitempty"`
}

// WebhookUser is the user payload carried by identity events
type WebhookUser struct {
	ID             string          `json:"id"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts"`
}

// WebhookEvent is a signature-verified identity-provider event
type WebhookEvent struct {
	Type string      `json:"type"`
	User WebhookUser `json:"user"`
}

// WebhookVerifier verifies and parses identity-provider webhook payloads
type WebhookVerifier interface {
	VerifyWebhook(body []byte, msgID, timestamp, signature string) (*WebhookEvent, error)
}

// SvixWebhookVerifier verifies Svix-signed webhooks with a shared secret
type SvixWebhookVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewSvixWebhookVerifier creates a verifier from the signing secret
// ("whsec_..." or raw base64).
func NewSvixWebhookVerifier(signingKey string) (*SvixWebhookVerifier, error) {
	if signingKey == "" {
		return nil, ErrMissingSecret
	}
	secret, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(signingKey, "whsec_"))
	if err != nil {
		return nil, err
	}
	return &SvixWebhookVerifier{secret: secret, now: time.Now}, nil
}

// VerifyWebhook checks the timestamp tolerance and HMAC signature, then
// parses the event payload.
func (v *SvixWebhookVerifier) VerifyWebhook(body []byte, msgID, timestamp, signature string) (*WebhookEvent, error) {
	if msgID == "" || timestamp == "" || signature == "" {
		return nil, ErrInvalidWebhook
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return nil, ErrInvalidWebhook
	}
	age := v.now().Sub(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return nil, ErrWebhookTooOld
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !signatureMatches(signature, expected) {
		return nil, ErrInvalidWebhook
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, ErrInvalidWebhook
	}
	return &event, nil
}

func signatureMatches(header, expected string) bool {
	for _, part := range strings.Fields(header) {
		versioned := strings.SplitN(part, ",", 2)
		if len(versioned) != 2 || versioned[0] != "v1" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(versioned[1]), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}
