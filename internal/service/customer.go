package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// Default messages substituted when a failure carries no backend message.
const (
	msgCreateCustomer     = "error creating customer"
	msgListCustomers      = "error fetching customers"
	msgGetCustomer        = "error fetching customer"
	msgUpdateCustomer     = "error updating customer"
	msgSearchCustomers    = "search error"
	msgDeactivateCustomer = "error deactivating customer"
	msgActivateCustomer   = "error activating customer"
	msgCustomerStats      = "error fetching statistics"
	msgCustomersByUser    = "error fetching customers by user"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	API       ports.APIClient
	Evaluator StatisticsEvaluator // optional; defaults to the JMESPath evaluator
}

// CustomerService provides typed operations over the customer endpoints.
// It carries no business logic beyond request validation and error
// normalization: every failure surfaces as one error kind with one message.
type CustomerService struct {
	api  ports.APIClient
	eval StatisticsEvaluator
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	eval := opts.Evaluator
	if eval == nil {
		eval = jmespathLibEvaluator{}
	}
	return &CustomerService{api: opts.API, eval: eval}
}

// Create creates a customer.
func (s *CustomerService) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	if req == nil {
		return nil, normalizeErr(fmt.Errorf("create customer request is required"), msgCreateCustomer)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	var out model.Customer
	if err := s.api.Post(ctx, "/api/customers", req, &out); err != nil {
		return nil, normalizeErr(err, msgCreateCustomer)
	}
	return &out, nil
}

// List returns a page of customers.
func (s *CustomerService) List(ctx context.Context, page model.PageRequest) (*model.Page[model.Customer], error) {
	page = page.Normalize()
	if page.Sort == "" {
		page.Sort = "createdAt"
	}
	query := pageQuery(page)

	var out model.Page[model.Customer]
	if err := s.api.Get(ctx, "/api/customers", query, &out); err != nil {
		return nil, normalizeErr(err, msgListCustomers)
	}
	return &out, nil
}

// GetByID retrieves a customer by ID.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var out model.Customer
	if err := s.api.Get(ctx, "/api/customers/"+formatID(id), nil, &out); err != nil {
		return nil, normalizeErr(err, msgGetCustomer)
	}
	return &out, nil
}

// Update applies a partial update to a customer. Nil fields stay unchanged.
func (s *CustomerService) Update(ctx context.Context, id int64, req *model.UpdateCustomerRequest) (*model.Customer, error) {
	if req == nil {
		return nil, normalizeErr(fmt.Errorf("update customer request is required"), msgUpdateCustomer)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Customer
	if err := s.api.Put(ctx, "/api/customers/"+formatID(id), req, &out); err != nil {
		return nil, normalizeErr(err, msgUpdateCustomer)
	}
	return &out, nil
}

// Search returns a page of customers matching the term. A term matching
// nothing yields an empty page, not an error.
func (s *CustomerService) Search(ctx context.Context, term string, page model.PageRequest) (*model.Page[model.Customer], error) {
	page = page.Normalize()
	query := url.Values{}
	query.Set("term", term)
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("size", strconv.Itoa(page.Size))

	var out model.Page[model.Customer]
	if err := s.api.Get(ctx, "/api/customers/search", query, &out); err != nil {
		return nil, normalizeErr(err, msgSearchCustomers)
	}
	return &out, nil
}

// Deactivate soft-deletes a customer by flipping its status flag. The
// toggle is idempotent: deactivating an inactive customer is a no-op.
func (s *CustomerService) Deactivate(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/api/customers/"+formatID(id)); err != nil {
		return normalizeErr(err, msgDeactivateCustomer)
	}
	return nil
}

// Activate restores a deactivated customer. Idempotent like Deactivate.
func (s *CustomerService) Activate(ctx context.Context, id int64) error {
	if err := s.api.Post(ctx, "/api/customers/"+formatID(id)+"/activate", nil, nil); err != nil {
		return normalizeErr(err, msgActivateCustomer)
	}
	return nil
}

// Statistics returns the canonical customer statistics, reconciling
// backend field-name variants at this boundary.
func (s *CustomerService) Statistics(ctx context.Context) (*model.CustomerStatistics, error) {
	var raw map[string]any
	if err := s.api.Get(ctx, "/api/customers/statistics", nil, &raw); err != nil {
		return nil, normalizeErr(err, msgCustomerStats)
	}
	stats, err := mapCustomerStatistics(s.eval, raw)
	if err != nil {
		return nil, normalizeErr(err, msgCustomerStats)
	}
	return stats, nil
}

// ListByUser returns a page of the customers managed by a given administrator.
func (s *CustomerService) ListByUser(ctx context.Context, userID int64, page model.PageRequest) (*model.Page[model.Customer], error) {
	page = page.Normalize()
	query := url.Values{}
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("size", strconv.Itoa(page.Size))

	var out model.Page[model.Customer]
	if err := s.api.Get(ctx, "/api/customers/by-user/"+formatID(userID), query, &out); err != nil {
		return nil, normalizeErr(err, msgCustomersByUser)
	}
	return &out, nil
}

func pageQuery(page model.PageRequest) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("size", strconv.Itoa(page.Size))
	if page.Sort != "" {
		query.Set("sort", page.Sort)
	}
	return query
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
