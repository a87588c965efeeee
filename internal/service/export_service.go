package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/reflectx"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/internal/repository"
	"github.com/tbcare/screening-api/pkg/export"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
	"github.com/tbcare/screening-api/pkg/storage"
)

// DownloadPrefix is the route under which signed export tokens are served.
const DownloadPrefix = "/exports/"

type exportUserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type exportRecordRepository interface {
	FindInWindow(ctx context.Context, regionID, siteID int64, start, end time.Time) ([]models.Record, error)
}

type exportRenderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
}

var recordMapper = reflectx.NewMapperFunc("db", strings.ToLower)

// ExportService renders the records of a site over a resolved window and stores the file.
type ExportService struct {
	users     exportUserFinder
	records   exportRecordRepository
	policy    *ExportPolicy
	backend   storage.Backend
	signer    *storage.SignedURLSigner
	renderers map[string]exportRenderer
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewExportService wires the export pipeline.
func NewExportService(users exportUserFinder, records exportRecordRepository, policy *ExportPolicy, backend storage.Backend, signer *storage.SignedURLSigner, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == nil {
		policy = NewExportPolicy(logger)
	}
	return &ExportService{
		users:   users,
		records: records,
		policy:  policy,
		backend: backend,
		signer:  signer,
		renderers: map[string]exportRenderer{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Export checks eligibility, renders the records and returns the download path.
func (s *ExportService) Export(ctx context.Context, req models.ExportRequest) (result *models.ExportResult, err error) {
	defer func() {
		s.metrics.RecordExport(s.formatLabel(req.Format), outcomeLabel(err), resultRows(result))
	}()

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, classify(err, "user", "find user")
	}

	window, err := s.policy.Resolve(user, req)
	if err != nil {
		return nil, err
	}

	renderer, ok := s.renderers[req.Format]
	if !ok {
		return nil, appErrors.Invalid("unsupported export format %q", req.Format)
	}

	start := time.Now()
	records, err := s.records.FindInWindow(ctx, window.RegionID, window.SiteID, window.Start, window.End)
	s.metrics.ObserveDBQuery("export_records", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "load export records")
	}

	data, err := renderer.Render(recordsDataset(records, window))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "render export")
	}

	id := uuid.NewString()
	name := fmt.Sprintf("%s/%s.%s", time.Now().UTC().Format("2006/01/02"), id, req.Format)
	stored, err := s.backend.Save(ctx, name, data, renderer.ContentType())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "store export")
	}

	token, expiresAt, err := s.signer.Sign(id, stored)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInternal, "sign export")
	}

	s.logger.Info("export stored",
		zap.String("export_id", id),
		zap.Int64("user_id", user.ID),
		zap.Int("rows", len(records)),
		zap.Int("bytes", len(data)),
	)

	return &models.ExportResult{
		ID:           id,
		Format:       req.Format,
		Rows:         len(records),
		DownloadPath: DownloadPrefix + token,
		ExpiresAt:    expiresAt,
	}, nil
}

// Download resolves a token to the stored file. The caller must close the reader.
func (s *ExportService) Download(ctx context.Context, token string) (io.ReadCloser, *models.ExportDownload, error) {
	grant, err := s.signer.Parse(token)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTokenExpired):
			return nil, nil, appErrors.Wrap(err, appErrors.KindForbidden, "download link expired")
		case errors.Is(err, storage.ErrTokenSignature):
			return nil, nil, appErrors.Wrap(err, appErrors.KindForbidden, "invalid download token")
		default:
			return nil, nil, appErrors.Wrap(err, appErrors.KindInvalidRequest, "malformed download token")
		}
	}

	reader, size, err := s.backend.Open(ctx, grant.Name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, appErrors.Wrap(err, appErrors.KindInvalidRequest, "export not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.KindInternal, "open export")
	}

	ext := path.Ext(grant.Name)
	contentType := "application/octet-stream"
	if r, ok := s.renderers[strings.TrimPrefix(ext, ".")]; ok {
		contentType = r.ContentType()
	}
	return reader, &models.ExportDownload{
		Filename:    "export-" + grant.ExportID + ext,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *ExportService) formatLabel(format string) string {
	if _, ok := s.renderers[format]; ok {
		return format
	}
	return "other"
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return strings.ToLower(string(appErrors.FromError(err).Kind))
}

func resultRows(result *models.ExportResult) int {
	if result == nil {
		return 0
	}
	return result.Rows
}

func recordsDataset(records []models.Record, window *models.ExportWindow) export.Dataset {
	headers := repository.RecordColumns()
	rows := make([][]string, 0, len(records))
	for i := range records {
		v := reflect.ValueOf(&records[i]).Elem()
		row := make([]string, len(headers))
		for j, col := range headers {
			row[j] = cellValue(recordMapper.FieldByName(v, col))
		}
		rows = append(rows, row)
	}
	return export.Dataset{
		Title: fmt.Sprintf("TB screening records %s to %s",
			window.Start.Format("2006-01-02"), window.End.Format("2006-01-02")),
		Headers: headers,
		Rows:    rows,
	}
}

func cellValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch x := v.Interface().(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

// Prune removes stored exports older than retention. Backends without
// retention support are left untouched.
func (s *ExportService) Prune(ctx context.Context, retention time.Duration) (int, error) {
	pruner, ok := s.backend.(storage.Pruner)
	if !ok {
		return 0, nil
	}
	deleted, err := pruner.CleanupOlderThan(ctx, retention)
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed", zap.Int("count", len(deleted)))
	}
	if err != nil {
		return len(deleted), fmt.Errorf("prune exports: %w", err)
	}
	return len(deleted), nil
}
