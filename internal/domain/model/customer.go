package model

import (
	"strings"
	"time"

	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
)

// DocumentType identifies the kind of identity document on a customer record.
type DocumentType string

const (
	DocumentTypeCedula   DocumentType = "CEDULA"
	DocumentTypePassport DocumentType = "PASSPORT"
	DocumentTypeRNC      DocumentType = "RNC"
)

// Valid reports whether the document type is supported.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentTypeCedula, DocumentTypePassport, DocumentTypeRNC:
		return true
	default:
		return false
	}
}

// ParseDocumentType normalizes a document type string and reports whether it is supported.
func ParseDocumentType(value string) (DocumentType, bool) {
	dt := DocumentType(strings.ToUpper(strings.TrimSpace(value)))
	if dt.Valid() {
		return dt, true
	}
	return "", false
}

// AddressType identifies the kind of address on a customer record.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// Valid reports whether the address type is supported.
func (a AddressType) Valid() bool {
	switch a {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

// ParseAddressType normalizes an address type string and reports whether it is supported.
func ParseAddressType(value string) (AddressType, bool) {
	at := AddressType(strings.ToUpper(strings.TrimSpace(value)))
	if at.Valid() {
		return at, true
	}
	return "", false
}

// Address is owned exclusively by its Customer and has no independent
// lifecycle. ID is absent on entries that have not been persisted yet.
type Address struct {
	ID        *int64      `json:"id,omitempty"`
	Street    string      `json:"street"`
	City      string      `json:"city"`
	Country   string      `json:"country"`
	Type      AddressType `json:"type"`
	IsPrimary bool        `json:"isPrimary"`
	Active    *bool       `json:"active,omitempty"`
}

// Customer represents a customer record as returned by the backend.
type Customer struct {
	ID             int64        `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	DocumentNumber string       `json:"documentNumber"`
	DocumentType   DocumentType `json:"documentType"`
	Active         bool         `json:"active"`
	Addresses      []Address    `json:"addresses"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      *time.Time   `json:"updatedAt,omitempty"`
}

// CreateCustomerRequest represents parameters to create a Customer.
type CreateCustomerRequest struct {
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	DocumentNumber string       `json:"documentNumber"`
	DocumentType   DocumentType `json:"documentType"`
	Addresses      []Address    `json:"addresses"`
}

// Validate checks required fields and address invariants before the
// request is sent. At most one address may be marked primary.
func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return apperrors.ValidationField("firstName", "first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return apperrors.ValidationField("lastName", "last name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return apperrors.ValidationField("phone", "phone is required")
	}
	if strings.TrimSpace(r.DocumentNumber) == "" {
		return apperrors.ValidationField("documentNumber", "document number is required")
	}
	if !r.DocumentType.Valid() {
		return apperrors.ValidationField("documentType", "unknown document type")
	}
	return validateAddresses(r.Addresses)
}

// Normalize trims whitespace and upcases enum values in place.
func (r *CreateCustomerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.DocumentType = DocumentType(strings.ToUpper(string(r.DocumentType)))
	for i := range r.Addresses {
		r.Addresses[i].Type = AddressType(strings.ToUpper(string(r.Addresses[i].Type)))
	}
}

// UpdateCustomerRequest represents a partial customer update.
// Nil fields are omitted from the request body and left unchanged.
type UpdateCustomerRequest struct {
	FirstName      *string       `json:"firstName,omitempty"`
	LastName       *string       `json:"lastName,omitempty"`
	Email          *string       `json:"email,omitempty"`
	Phone          *string       `json:"phone,omitempty"`
	DocumentNumber *string       `json:"documentNumber,omitempty"`
	DocumentType   *DocumentType `json:"documentType,omitempty"`
	Addresses      []Address     `json:"addresses,omitempty"`
}

// Validate checks the provided fields; absent fields are not validated.
func (r *UpdateCustomerRequest) Validate() error {
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return apperrors.ValidationField("firstName", "first name cannot be empty")
	}
	if r.LastName != nil && strings.TrimSpace(*r.LastName) == "" {
		return apperrors.ValidationField("lastName", "last name cannot be empty")
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		return apperrors.ValidationField("email", "email cannot be empty")
	}
	if r.DocumentType != nil && !r.DocumentType.Valid() {
		return apperrors.ValidationField("documentType", "unknown document type")
	}
	return validateAddresses(r.Addresses)
}

func validateAddresses(addresses []Address) error {
	primaries := 0
	for _, a := range addresses {
		if !a.Type.Valid() {
			return apperrors.ValidationField("addresses", "unknown address type")
		}
		if strings.TrimSpace(a.Street) == "" {
			return apperrors.ValidationField("addresses", "street is required")
		}
		if a.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return apperrors.ValidationField("addresses", "only one address may be primary")
	}
	return nil
}
