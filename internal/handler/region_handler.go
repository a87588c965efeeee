package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/response"
)

type regionService interface {
	CreateRegion(ctx context.Context, req dto.NameRequest) (*models.Region, error)
	CreateSite(ctx context.Context, regionID int64, req dto.NameRequest) (*models.Site, error)
}

// RegionHandler manages regions and their sites.
type RegionHandler struct {
	service regionService
	logger  *zap.Logger
}

// NewRegionHandler creates a region handler.
func NewRegionHandler(svc regionService, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{service: svc, logger: logger}
}

// CreateRegion godoc
// @Summary Create region
// @Tags Regions
// @Accept json
// @Produce json
// @Param payload body dto.NameRequest true "Region payload"
// @Success 200 {object} models.Region
// @Failure 400 {string} string
// @Router /regions [post]
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	var req dto.NameRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	region, err := h.service.CreateRegion(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, region)
}

// CreateSite godoc
// @Summary Create site in region
// @Tags Regions
// @Accept json
// @Produce json
// @Param region_id path int true "Region ID"
// @Param payload body dto.NameRequest true "Site payload"
// @Success 200 {object} models.Site
// @Failure 400 {string} string
// @Router /regions/{region_id}/sites [post]
func (h *RegionHandler) CreateSite(c *gin.Context) {
	regionID, err := paramInt(c, "region_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req dto.NameRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	site, err := h.service.CreateSite(c.Request.Context(), regionID, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, site)
}
