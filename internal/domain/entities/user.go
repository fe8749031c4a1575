package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents KYC verification status
type KYCStatus string

const (
	KYCNotStarted  KYCStatus = "NOT_STARTED"
	KYCPending     KYCStatus = "PENDING"
	KYCUnderReview KYCStatus = "UNDER_REVIEW"
	KYCActive      KYCStatus = "ACTIVE"
	KYCRejected    KYCStatus = "REJECTED"
)

// User represents a user entity. Users are created exclusively by the
// identity-provider webhook; PrivyID is the immutable join key.
type User struct {
	ID                uuid.UUID   `json:"id"`
	PrivyID           string      `json:"privyId"`
	Email             null.String `json:"email,omitempty"`
	DisplayName       null.String `json:"displayName,omitempty"`
	WalletAddress     null.String `json:"walletAddress,omitempty"`
	KYCStatus         KYCStatus   `json:"kycStatus"`
	KYCProviderUserID null.String `json:"-"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	DeletedAt         *time.Time  `json:"-"`
}

// UpsertUserInput carries the fields extracted from a user.created
// identity event. Nil-able fields overwrite on conflict, even to null.
type UpsertUserInput struct {
	PrivyID       string
	Email         null.String
	DisplayName   null.String
	WalletAddress null.String
}
