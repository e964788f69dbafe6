package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

const (
	msgCreateUser     = "error creating user"
	msgListUsers      = "error fetching users"
	msgListAdmins     = "error fetching administrators"
	msgGetUser        = "error fetching user"
	msgUpdateUser     = "error updating user"
	msgSearchUsers    = "search error"
	msgDeactivateUser = "error deactivating user"
	msgActivateUser   = "error activating user"
	msgUserStats      = "error fetching statistics"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	API       ports.APIClient
	Evaluator StatisticsEvaluator // optional; defaults to the JMESPath evaluator
}

// UserService provides typed operations over the administrator-account
// endpoints. These records are what SUPERADMIN manages; the caller's own
// identity lives in the session, not here.
type UserService struct {
	api  ports.APIClient
	eval StatisticsEvaluator
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	eval := opts.Evaluator
	if eval == nil {
		eval = jmespathLibEvaluator{}
	}
	return &UserService{api: opts.API, eval: eval}
}

// Create creates an administrator account.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, normalizeErr(fmt.Errorf("create user request is required"), msgCreateUser)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	var out model.User
	if err := s.api.Post(ctx, "/api/admin/users", req, &out); err != nil {
		return nil, normalizeErr(err, msgCreateUser)
	}
	return &out, nil
}

// List returns a page of administrator accounts.
func (s *UserService) List(ctx context.Context, page model.PageRequest) (*model.Page[model.User], error) {
	page = page.Normalize()
	if page.Sort == "" {
		page.Sort = "createdAt"
	}
	query := pageQuery(page)

	var out model.Page[model.User]
	if err := s.api.Get(ctx, "/api/admin/users", query, &out); err != nil {
		return nil, normalizeErr(err, msgListUsers)
	}
	return &out, nil
}

// ActiveAdmins returns the active ADMIN accounts only (unpaginated).
func (s *UserService) ActiveAdmins(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := s.api.Get(ctx, "/api/admin/users/admins", nil, &out); err != nil {
		return nil, normalizeErr(err, msgListAdmins)
	}
	return out, nil
}

// GetByID retrieves an administrator account by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	if err := s.api.Get(ctx, "/api/admin/users/"+formatID(id), nil, &out); err != nil {
		return nil, normalizeErr(err, msgGetUser)
	}
	return &out, nil
}

// Update updates an administrator account. A nil Password leaves the
// stored password unchanged.
func (s *UserService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, normalizeErr(fmt.Errorf("update user request is required"), msgUpdateUser)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.User
	if err := s.api.Put(ctx, "/api/admin/users/"+formatID(id), req, &out); err != nil {
		return nil, normalizeErr(err, msgUpdateUser)
	}
	return &out, nil
}

// Search returns the administrator accounts matching the term.
func (s *UserService) Search(ctx context.Context, term string) ([]model.User, error) {
	query := url.Values{}
	query.Set("term", term)

	var out []model.User
	if err := s.api.Get(ctx, "/api/admin/users/search", query, &out); err != nil {
		return nil, normalizeErr(err, msgSearchUsers)
	}
	return out, nil
}

// Deactivate disables an administrator account. Idempotent status toggle,
// not a destructive delete.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/api/admin/users/"+formatID(id)); err != nil {
		return normalizeErr(err, msgDeactivateUser)
	}
	return nil
}

// Activate re-enables a deactivated administrator account. Idempotent.
func (s *UserService) Activate(ctx context.Context, id int64) error {
	if err := s.api.Post(ctx, "/api/admin/users/"+formatID(id)+"/activate", nil, nil); err != nil {
		return normalizeErr(err, msgActivateUser)
	}
	return nil
}

// Statistics returns the canonical user statistics, reconciling backend
// field-name variants at this boundary.
func (s *UserService) Statistics(ctx context.Context) (*model.UserStatistics, error) {
	var raw map[string]any
	if err := s.api.Get(ctx, "/api/admin/users/statistics", nil, &raw); err != nil {
		return nil, normalizeErr(err, msgUserStats)
	}
	stats, err := mapUserStatistics(s.eval, raw)
	if err != nil {
		return nil, normalizeErr(err, msgUserStats)
	}
	return stats, nil
}
