package entities

import (
	"github.com/go-playground/validator/v10"
)

// KYCSubmitInput is the verification submission payload
type KYCSubmitInput struct {
	FirstName     string `json:"firstName" validate:"required,max=100"`
	LastName      string `json:"lastName" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required"`
	Country       string `json:"country" validate:"required,len=3,alpha"`
}

var kycValidate = validator.New()

// Validate checks the submission against the strict schema and returns one
// message per failing field. An empty slice means the payload is valid.
func (in *KYCSubmitInput) Validate() []string {
	err := kycValidate.Struct(in)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid submission"}
	}

	var messages []string
	for _, fe := range validationErrs {
		messages = append(messages, kycFieldMessage(fe))
	}
	return messages
}

func kycFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		if fe.Tag() == "max" {
			return "First name must be 100 characters or fewer"
		}
		return "First name is required"
	case "LastName":
		if fe.Tag() == "max" {
			return "Last name must be 100 characters or fewer"
		}
		return "Last name is required"
	case "Email":
		return "Valid email required"
	case "DateOfBirth":
		return "Date must be YYYY-MM-DD format"
	case "StreetAddress":
		return "Street address is required"
	case "City":
		return "City is required"
	case "State":
		return "State/province is required"
	case "PostalCode":
		return "Postal code is required"
	case "Country":
		return "Country must be 3-letter ISO code (e.g., USA, GBR, BRA)"
	default:
		return "Invalid field: " + fe.Field()
	}
}

// KYCStatusResponse is returned by both KYC endpoints
type KYCStatusResponse struct {
	KYCStatus KYCStatus `json:"kycStatus"`
}
