package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/response"
)

type exportService interface {
	Export(ctx context.Context, req models.ExportRequest) (*models.ExportResult, error)
	Download(ctx context.Context, token string) (io.ReadCloser, *models.ExportDownload, error)
}

// ExportHandler generates record exports and serves the stored files.
type ExportHandler struct {
	service exportService
	logger  *zap.Logger
}

// NewExportHandler creates an export handler.
func NewExportHandler(svc exportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{service: svc, logger: logger}
}

// Export godoc
// @Summary Export site records
// @Description Checks the user's export permissions and returns the download path of the generated file.
// @Tags Exports
// @Produce plain
// @Param user_id path int true "User ID"
// @Param region_id path int true "Region ID"
// @Param site_id path int true "Site ID"
// @Param format path string true "Export format" Enums(csv, pdf)
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Success 200 {string} string "Download path"
// @Failure 400 {string} string
// @Failure 403 {string} string
// @Router /users/{user_id}/regions/{region_id}/sites/{site_id}/exports/{format} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	ids, err := paramInts(c, "user_id", "region_id", "site_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	result, err := h.service.Export(c.Request.Context(), models.ExportRequest{
		UserID:    ids[0],
		RegionID:  ids[1],
		SiteID:    ids[2],
		Format:    c.Param("format"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Text(c, result.DownloadPath)
}

// Download godoc
// @Summary Download an export
// @Tags Exports
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 403 {string} string
// @Router /exports/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	reader, meta, err := h.service.Download(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, meta.Size, meta.ContentType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", meta.Filename),
	})
}
