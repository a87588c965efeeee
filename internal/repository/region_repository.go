package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tbcare/screening-api/internal/models"
)

// RegionRepository persists regions and their sites.
type RegionRepository struct {
	db *sqlx.DB
}

// NewRegionRepository constructs the repository.
func NewRegionRepository(db *sqlx.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// CreateRegion inserts a region. Duplicate names surface as ErrDuplicate.
func (r *RegionRepository) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	const query = `INSERT INTO regions (name, created_at) VALUES ($1, $2) RETURNING id, name, created_at`
	var region models.Region
	if err := r.db.GetContext(ctx, &region, query, name, time.Now().UTC()); err != nil {
		return nil, wrapPQ("insert region", err)
	}
	return &region, nil
}

// CreateSite inserts a site under a region. An unknown region surfaces as ErrInvalidReference.
func (r *RegionRepository) CreateSite(ctx context.Context, regionID int64, name string) (*models.Site, error) {
	const query = `INSERT INTO sites (region_id, name, created_at) VALUES ($1, $2, $3) RETURNING id, region_id, name, created_at`
	var site models.Site
	if err := r.db.GetContext(ctx, &site, query, regionID, name, time.Now().UTC()); err != nil {
		return nil, wrapPQ("insert site", err)
	}
	return &site, nil
}
