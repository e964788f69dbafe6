package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
	"github.com/criseulises/customer-admin-go/internal/mocks"
	"github.com/criseulises/customer-admin-go/internal/testutil"
)

func newUserService(api *mocks.MockAPIClient) *UserService {
	return NewUserService(UserServiceOptions{API: api})
}

func TestUserServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	req := testutil.NewUserRequest().WithEmail("new.admin@example.com").Build()

	api.EXPECT().
		Post(ctx, "/api/admin/users", req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			u := out.(*model.User)
			u.ID = 9
			u.Email = req.Email
			u.Role = req.Role
			u.Active = true
			return nil
		})

	user, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "ADMIN", user.Role)
}

func TestUserServiceCreateValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)

	req := testutil.NewUserRequest().WithPassword("").Build()

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	api.EXPECT().
		Get(ctx, "/api/admin/users", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) error {
			assert.Equal(t, "createdAt", query.Get("sort"))
			out.(*model.Page[model.User]).Content = []model.User{{ID: 1}, {ID: 2}, {ID: 3}}
			return nil
		})

	page, err := svc.List(ctx, model.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
}

func TestUserServiceActiveAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	api.EXPECT().
		Get(ctx, "/api/admin/users/admins", nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*[]model.User) = []model.User{
				{ID: 1, Role: "ADMIN", Active: true},
				{ID: 2, Role: "ADMIN", Active: true},
			}
			return nil
		})

	admins, err := svc.ActiveAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 2)
}

func TestUserServiceUpdateKeepsPasswordWhenNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	req := &model.UpdateUserRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
	}

	api.EXPECT().
		Put(ctx, "/api/admin/users/9", req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body any, out any) error {
			sent := body.(*model.UpdateUserRequest)
			assert.Nil(t, sent.Password, "nil password must reach the wire as an omission")
			out.(*model.User).ID = 9
			return nil
		})

	user, err := svc.Update(ctx, 9, req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
}

func TestUserServiceUpdateRejectsEmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)

	empty := ""
	req := &model.UpdateUserRequest{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Password:  &empty,
	}

	_, err := svc.Update(context.Background(), 9, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserServiceSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	api.EXPECT().
		Get(ctx, "/api/admin/users/search", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) error {
			assert.Equal(t, "maria", query.Get("term"))
			*out.(*[]model.User) = []model.User{{ID: 4, FirstName: "Maria"}}
			return nil
		})

	users, err := svc.Search(ctx, "maria")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserServiceDeactivateAndActivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	api.EXPECT().Delete(ctx, "/api/admin/users/9").Return(nil)
	require.NoError(t, svc.Deactivate(ctx, 9))

	api.EXPECT().Post(ctx, "/api/admin/users/9/activate", nil, nil).Return(nil)
	require.NoError(t, svc.Activate(ctx, 9))
}

func TestUserServiceStatisticsVariantNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	api.EXPECT().
		Get(ctx, "/api/admin/users/statistics", nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*map[string]any) = map[string]any{
				"totalUsers":  float64(10),
				"activeUsers": float64(8),
				"admins":      float64(6),
				"superAdmins": float64(2),
			}
			return nil
		})

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(6), stats.Admins, "short variant name is reconciled")
	assert.Equal(t, int64(2), stats.SuperAdmins)
	assert.Equal(t, int64(2), stats.Inactive)
}

func TestUserServiceStatisticsDefaultMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	svc := newUserService(api)
	ctx := context.Background()

	messageless := &apperrors.AppError{Code: apperrors.ErrCodeDecode}
	api.EXPECT().
		Get(ctx, "/api/admin/users/statistics", nil, gomock.Any()).
		Return(messageless)

	_, err := svc.Statistics(ctx)
	require.Error(t, err)
	assert.Equal(t, "error fetching statistics", apperrors.UserMessage(err, ""))
}
