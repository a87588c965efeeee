package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
)

type regionRepository interface {
	CreateRegion(ctx context.Context, name string) (*models.Region, error)
	CreateSite(ctx context.Context, regionID int64, name string) (*models.Site, error)
}

// RegionService manages the region and site hierarchy.
type RegionService struct {
	repo      regionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegionService constructs the service.
func NewRegionService(repo regionRepository, validate *validator.Validate, logger *zap.Logger) *RegionService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegionService{repo: repo, validator: validate, logger: logger}
}

func (s *RegionService) CreateRegion(ctx context.Context, req dto.NameRequest) (*models.Region, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	region, err := s.repo.CreateRegion(ctx, req.Name)
	if err != nil {
		return nil, classify(err, "region", "create region")
	}
	return region, nil
}

// CreateSite adds a site to an existing region.
func (s *RegionService) CreateSite(ctx context.Context, regionID int64, req dto.NameRequest) (*models.Site, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	site, err := s.repo.CreateSite(ctx, regionID, req.Name)
	if err != nil {
		return nil, classify(err, "site", "create site")
	}
	return site, nil
}
