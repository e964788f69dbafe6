package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
)

func validCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Password:  "s3cret",
		Role:      "ADMIN",
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	req := validCreateUserRequest()
	require.NoError(t, req.Validate())
}

func TestCreateUserRequestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateUserRequest)
		wantField string
	}{
		{"missing first name", func(r *CreateUserRequest) { r.FirstName = "" }, "firstName"},
		{"missing last name", func(r *CreateUserRequest) { r.LastName = " " }, "lastName"},
		{"missing email", func(r *CreateUserRequest) { r.Email = "" }, "email"},
		{"missing password", func(r *CreateUserRequest) { r.Password = "" }, "password"},
		{"missing role", func(r *CreateUserRequest) { r.Role = "" }, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateUserRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestCreateUserRequestNormalize(t *testing.T) {
	req := CreateUserRequest{
		FirstName: "  Admin ",
		LastName:  " User ",
		Email:     " admin@example.com ",
		Password:  "s3cret",
		Role:      " admin ",
	}
	req.Normalize()

	assert.Equal(t, "Admin", req.FirstName)
	assert.Equal(t, "admin@example.com", req.Email)
	assert.Equal(t, "ADMIN", req.Role)
}

func TestUpdateUserRequestValidate(t *testing.T) {
	req := UpdateUserRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
	}
	require.NoError(t, req.Validate())

	empty := ""
	req.Password = &empty
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "omit it to keep the current one")
}

func TestUpdateUserRequestOmitsNilPassword(t *testing.T) {
	req := UpdateUserRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")

	password := "new-secret"
	req.Password = &password
	body, err = json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"password":"new-secret"`)
}
