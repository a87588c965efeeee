package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/internal/repository"
	"github.com/tbcare/screening-api/pkg/config"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

type mockUserRepo struct {
	users       map[int64]*models.User
	signupCalls int
	listCalls   int
	signupErr   error
	assignErr   error
	nextID      int64
	assigned    string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	m.listCalls++
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Signup(ctx context.Context, user *models.User) error {
	m.signupCalls++
	if m.signupErr != nil {
		return m.signupErr
	}
	user.ID = m.nextID
	m.nextID++
	user.State = models.UserStateVerified
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if _, ok := m.users[user.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	clone := *user
	m.users[user.ID] = &clone
	return &clone, nil
}

func (m *mockUserRepo) AssignRole(ctx context.Context, userID, siteID, regionID int64, role string) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	u, ok := m.users[userID]
	if !ok || u.SiteID != siteID || u.RegionID != regionID {
		return sql.ErrNoRows
	}
	m.assigned = role
	u.TypeOfUser = &role
	return nil
}

func validSignup() dto.SignupRequest {
	return dto.SignupRequest{
		Email: "nurse@example.com", Password: "s3cret", PhoneNumber: "0700", Name: "Nurse",
		Occupation: "nurse", SiteID: 2, RegionID: 1,
	}
}

func TestUserServiceSignupVerifiesAndHashes(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})

	user, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, models.UserStateVerified, user.State)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestUserServiceSignupRequiresEveryField(t *testing.T) {
	blank := []func(*dto.SignupRequest){
		func(r *dto.SignupRequest) { r.Email = "" },
		func(r *dto.SignupRequest) { r.Password = "" },
		func(r *dto.SignupRequest) { r.PhoneNumber = "" },
		func(r *dto.SignupRequest) { r.Name = "" },
		func(r *dto.SignupRequest) { r.Occupation = "" },
		func(r *dto.SignupRequest) { r.SiteID = 0 },
		func(r *dto.SignupRequest) { r.RegionID = 0 },
	}
	for i, mutate := range blank {
		repo := newMockUserRepo()
		svc := NewUserService(repo, nil, nil, UserServiceOptions{})
		req := validSignup()
		mutate(&req)

		_, err := svc.Signup(context.Background(), req)
		require.Error(t, err, "case %d", i)
		assert.Equal(t, appErrors.KindInvalidRequest, appErrors.FromError(err).Kind)
		assert.Zero(t, repo.signupCalls, "case %d must not reach the repository", i)
	}
}

func TestUserServiceSignupMissingFieldMessage(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), nil, nil, UserServiceOptions{})
	req := validSignup()
	req.PhoneNumber = ""
	_, err := svc.Signup(context.Background(), req)
	assert.Equal(t, "missing phone_number", appErrors.FromError(err).Message)
}

func TestUserServiceSignupConflict(t *testing.T) {
	repo := newMockUserRepo()
	repo.signupErr = fmt.Errorf("insert user: %w: %w", repository.ErrDuplicate, &pq.Error{Code: "23505"})
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})

	_, err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, appErrors.ErrConflict)
}

func TestUserServiceSignupUnexpectedFailureIsInternal(t *testing.T) {
	repo := newMockUserRepo()
	repo.signupErr = errors.New("connection reset")
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})

	_, err := svc.Signup(context.Background(), validSignup())
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.KindInternal, appErr.Kind)
	assert.Equal(t, appErrors.InternalMessage, appErr.PublicMessage())
}

func TestUserServiceLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nurse@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "nurse@example.com", result.User.Email)
	assert.Empty(t, result.SessionToken)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nurse@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthenticated)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthenticated)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nurse@example.com"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
}

func TestUserServiceLoginIssuesSessionWhenEnabled(t *testing.T) {
	repo := newMockUserRepo()
	sessions := NewSessionService(config.SessionConfig{Enabled: true, Secret: "k", TTL: time.Hour})
	svc := NewUserService(repo, nil, nil, UserServiceOptions{Sessions: sessions})
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nurse@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)

	claims, err := sessions.Validate(result.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func updateRequest() dto.UpdateUserRequest {
	occupation, phone, state, exports, role := "clinician", "0711", "verified", "csv,pdf", "admin"
	region, site := int64(1), int64(2)
	months := 6
	return dto.UpdateUserRequest{
		Occupation: &occupation, PhoneNumber: &phone, RegionID: &region, SiteID: &site,
		State: &state, TypeOfExport: &exports, TypeOfUser: &role, ExportableRange: &months,
	}
}

func TestUserServiceUpdate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})
	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, updateRequest())
	require.NoError(t, err)
	assert.Equal(t, "clinician", updated.Occupation)
	assert.Equal(t, 6, *updated.ExportableRange)
	assert.Equal(t, []string{"csv", "pdf"}, updated.ExportFormats())
}

func TestUserServiceUpdateRequiresAllKeys(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), nil, nil, UserServiceOptions{})
	req := updateRequest()
	req.ExportableRange = nil

	_, err := svc.Update(context.Background(), 1, req)
	require.Error(t, err)
	assert.Equal(t, "missing exportable_range", appErrors.FromError(err).Message)
}

func TestUserServiceUpdateUnknownUser(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), nil, nil, UserServiceOptions{})
	_, err := svc.Update(context.Background(), 404, updateRequest())
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
	assert.Equal(t, "user not found", appErrors.FromError(err).Message)
}

func TestUserServiceAssignRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, nil, UserServiceOptions{})
	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	require.NoError(t, svc.AssignRole(context.Background(), created.ID, 2, 1, dto.AssignRoleRequest{Role: "supervisor"}))
	assert.Equal(t, "supervisor", repo.assigned)

	err = svc.AssignRole(context.Background(), created.ID, 9, 1, dto.AssignRoleRequest{Role: "supervisor"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)

	err = svc.AssignRole(context.Background(), created.ID, 2, 1, dto.AssignRoleRequest{})
	assert.ErrorIs(t, err, appErrors.ErrInvalidRequest)
}

type memoryCache struct {
	values  map[string][]models.User
	deletes int
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	v, ok := m.values[key]
	if !ok {
		return repository.ErrCacheMiss
	}
	*dest.(*[]models.User) = v
	return nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.values[key] = value.([]models.User)
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	m.deletes++
	return nil
}

func TestUserServiceListUsesCache(t *testing.T) {
	repo := newMockUserRepo()
	store := &memoryCache{values: map[string][]models.User{}}
	cache := NewCacheService(store, NewMetricsService(), time.Minute, nil, true)
	svc := NewUserService(repo, nil, nil, UserServiceOptions{Cache: cache, Metrics: NewMetricsService()})

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)

	req := validSignup()
	req.Email = "second@example.com"
	_, err = svc.Signup(context.Background(), req)
	require.NoError(t, err)

	third, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, repo.listCalls)
}
