// Package testutil provides testing utilities and helpers for the customer admin client.
package testutil

import (
	"time"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

// CustomerRequestBuilder provides a fluent interface for building CreateCustomerRequest objects for testing.
type CustomerRequestBuilder struct {
	req *model.CreateCustomerRequest
}

// NewCustomerRequest creates a new CustomerRequestBuilder with sensible defaults.
func NewCustomerRequest() *CustomerRequestBuilder {
	return &CustomerRequestBuilder{
		req: &model.CreateCustomerRequest{
			FirstName:      "Maria",
			LastName:       "Perez",
			Email:          "maria.perez@example.com",
			Phone:          "8095551234",
			DocumentNumber: "00112345678",
			DocumentType:   model.DocumentTypeCedula,
		},
	}
}

// WithName sets first and last name.
func (b *CustomerRequestBuilder) WithName(first, last string) *CustomerRequestBuilder {
	b.req.FirstName = first
	b.req.LastName = last
	return b
}

// WithEmail sets the email address.
func (b *CustomerRequestBuilder) WithEmail(email string) *CustomerRequestBuilder {
	b.req.Email = email
	return b
}

// WithPhone sets the phone number.
func (b *CustomerRequestBuilder) WithPhone(phone string) *CustomerRequestBuilder {
	b.req.Phone = phone
	return b
}

// WithDocument sets the document number and type.
func (b *CustomerRequestBuilder) WithDocument(number string, docType model.DocumentType) *CustomerRequestBuilder {
	b.req.DocumentNumber = number
	b.req.DocumentType = docType
	return b
}

// WithAddress appends an address to the request.
func (b *CustomerRequestBuilder) WithAddress(addr model.Address) *CustomerRequestBuilder {
	b.req.Addresses = append(b.req.Addresses, addr)
	return b
}

// WithPrimaryAddress appends a primary home address with the given street.
func (b *CustomerRequestBuilder) WithPrimaryAddress(street string) *CustomerRequestBuilder {
	b.req.Addresses = append(b.req.Addresses, model.Address{
		Street:    street,
		City:      "Santo Domingo",
		Country:   "DO",
		Type:      model.AddressTypeHome,
		IsPrimary: true,
	})
	return b
}

// Build returns the constructed CreateCustomerRequest.
func (b *CustomerRequestBuilder) Build() *model.CreateCustomerRequest {
	return b.req
}

// UserRequestBuilder provides a fluent interface for building CreateUserRequest objects for testing.
type UserRequestBuilder struct {
	req *model.CreateUserRequest
}

// NewUserRequest creates a new UserRequestBuilder with sensible defaults.
func NewUserRequest() *UserRequestBuilder {
	return &UserRequestBuilder{
		req: &model.CreateUserRequest{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin.user@example.com",
			Password:  "s3cret-password",
			Role:      string(domainauth.RoleAdmin),
		},
	}
}

// WithName sets first and last name.
func (b *UserRequestBuilder) WithName(first, last string) *UserRequestBuilder {
	b.req.FirstName = first
	b.req.LastName = last
	return b
}

// WithEmail sets the email address.
func (b *UserRequestBuilder) WithEmail(email string) *UserRequestBuilder {
	b.req.Email = email
	return b
}

// WithPassword sets the password.
func (b *UserRequestBuilder) WithPassword(password string) *UserRequestBuilder {
	b.req.Password = password
	return b
}

// WithRole sets the role.
func (b *UserRequestBuilder) WithRole(role domainauth.Role) *UserRequestBuilder {
	b.req.Role = string(role)
	return b
}

// Build returns the constructed CreateUserRequest.
func (b *UserRequestBuilder) Build() *model.CreateUserRequest {
	return b.req
}

// SessionBuilder provides a fluent interface for building Session objects for testing.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a new SessionBuilder with a valid admin session that
// expires an hour after TestTime.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			Token: "test-token",
			User: model.User{
				ID:        1,
				Email:     "admin@example.com",
				FirstName: "Admin",
				LastName:  "User",
				Role:      string(domainauth.RoleAdmin),
				Active:    true,
				CreatedAt: TestTime(),
			},
			ExpiresAt: TestTime().Add(time.Hour),
		},
	}
}

// WithToken sets the bearer token.
func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.sess.Token = token
	return b
}

// WithUser replaces the session user.
func (b *SessionBuilder) WithUser(user model.User) *SessionBuilder {
	b.sess.User = user
	return b
}

// WithRole sets the session user's role.
func (b *SessionBuilder) WithRole(role domainauth.Role) *SessionBuilder {
	b.sess.User.Role = string(role)
	return b
}

// WithExpiresAt sets the expiry time.
func (b *SessionBuilder) WithExpiresAt(t time.Time) *SessionBuilder {
	b.sess.ExpiresAt = t
	return b
}

// Build returns the constructed Session.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}
