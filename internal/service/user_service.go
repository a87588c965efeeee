package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

const usersCacheKey = "users:all"

type userRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Signup(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) (*models.User, error)
	AssignRole(ctx context.Context, userID, siteID, regionID int64, role string) error
}

// UserServiceOptions carries the optional collaborators of UserService.
type UserServiceOptions struct {
	Cache    *CacheService
	Sessions *SessionService
	Metrics  *MetricsService
}

// UserService implements signup, login and user administration.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
	cache     *CacheService
	sessions  *SessionService
	metrics   *MetricsService
}

// NewUserService constructs the service.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger, opts UserServiceOptions) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		cache:     opts.Cache,
		sessions:  opts.Sessions,
		metrics:   opts.Metrics,
	}
}

// Signup registers a clinician. The returned user is already verified.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req); err != nil {
		s.logger.Warn("signup rejected", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "hash password")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Occupation:   req.Occupation,
		SiteID:       req.SiteID,
		RegionID:     req.RegionID,
	}
	if err := s.repo.Signup(ctx, user); err != nil {
		return nil, classify(err, "user", "create user")
	}

	s.cache.Invalidate(ctx, usersCacheKey)
	s.logger.Info("user signed up", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*models.LoginResult, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "invalid email or password")
		}
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "find user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "invalid email or password")
	}

	result := &models.LoginResult{User: user}
	if s.sessions.Enabled() {
		token, expiresAt, err := s.sessions.Issue(user)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.KindInternal, "issue session")
		}
		result.SessionToken = token
		result.ExpiresAt = expiresAt
	}
	return result, nil
}

// List returns every user, served from cache when enabled.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var cached []models.User
	if s.cache.Get(ctx, usersCacheKey, &cached) {
		return cached, nil
	}

	start := time.Now()
	users, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("users_list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "list users")
	}

	s.cache.Set(ctx, usersCacheKey, users)
	return users, nil
}

// Get returns a user by id. A missing user is InvalidRequest.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "user", "find user")
	}
	return user, nil
}

// Update overwrites the administrative fields of a user.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Occupation = *req.Occupation
	user.PhoneNumber = *req.PhoneNumber
	user.RegionID = *req.RegionID
	user.SiteID = *req.SiteID
	user.State = models.UserState(*req.State)
	user.TypeOfExport = req.TypeOfExport
	user.TypeOfUser = req.TypeOfUser
	user.ExportableRange = req.ExportableRange

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, classify(err, "user", "update user")
	}

	s.cache.Invalidate(ctx, usersCacheKey)
	return updated, nil
}

// AssignRole sets the role of a user registered at the given site and region.
func (s *UserService) AssignRole(ctx context.Context, userID, siteID, regionID int64, req dto.AssignRoleRequest) error {
	if err := validatePayload(s.validator, req); err != nil {
		return err
	}
	if err := s.repo.AssignRole(ctx, userID, siteID, regionID, req.Role); err != nil {
		return classify(err, "user", "assign role")
	}
	s.cache.Invalidate(ctx, usersCacheKey)
	s.logger.Info("role assigned", zap.Int64("user_id", userID), zap.String("role", req.Role))
	return nil
}
