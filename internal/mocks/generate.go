// Package mocks provides mock implementations for testing the customer-admin client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockAPIClient(ctrl)
//	mockAPI.EXPECT().Get(gomock.Any(), "/api/customers", gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for APIClient interface from internal/ports package.
// This creates MockAPIClient with methods for all APIClient interface methods:
// Get, Post, Put, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=api_client_mock.go github.com/criseulises/customer-admin-go/internal/ports APIClient

// Generate mock for SessionStore interface from internal/ports package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Current, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/criseulises/customer-admin-go/internal/ports SessionStore
