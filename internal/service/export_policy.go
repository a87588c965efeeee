package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/dateparse"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

// endOfDay advances a calendar date to its last second.
const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second

// ExportPolicy decides whether a user may export a format over a date window.
//
// Month arithmetic compares month numbers only and ignores the year, so a start
// date in December evaluated in March yields a negative range and is allowed.
type ExportPolicy struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewExportPolicy constructs the policy.
func NewExportPolicy(logger *zap.Logger) *ExportPolicy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportPolicy{logger: logger, now: time.Now}
}

// Resolve runs the eligibility checks in order and returns the normalised window.
// Eligibility failures are Forbidden; unparseable dates are InvalidRequest.
func (p *ExportPolicy) Resolve(user *models.User, req models.ExportRequest) (*models.ExportWindow, error) {
	if user == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidRequest, "user not found")
	}
	log := p.logger.With(zap.Int64("user_id", user.ID), zap.String("format", req.Format))

	if user.ExportableRange == nil || *user.ExportableRange == 0 {
		return nil, p.deny(log, "Not allowed to export. Exportable_range < 1")
	}
	allowed := *user.ExportableRange
	if allowed < 1 {
		return nil, p.deny(log, "Not allowed to export. Exportable_range < 1")
	}
	if user.TypeOfExport == nil || *user.TypeOfExport == "" {
		return nil, p.deny(log, "Not allowed to export. No exportation type")
	}
	if !containsExact(user.ExportFormats(), req.Format) {
		return nil, p.deny(log, fmt.Sprintf("Not allowed to export to %s", req.Format))
	}

	start, err := dateparse.Parse(req.StartDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInvalidRequest, fmt.Sprintf("invalid start_date %q", req.StartDate))
	}

	monthRange := int(p.now().UTC().Month()) - int(start.Month())
	log.Debug("checking exportable_range", zap.Int("month_range", monthRange), zap.Int("exportable_range", allowed))
	if monthRange+1 > allowed {
		return nil, p.deny(log, "Not allowed to export. Exportable_range exceeded")
	}

	end, err := dateparse.Parse(req.EndDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindInvalidRequest, fmt.Sprintf("invalid end_date %q", req.EndDate))
	}
	end = end.Add(endOfDay)

	reqRange := int(end.Month()) - int(start.Month())
	log.Info("export range requested", zap.Int("months", reqRange+1))

	return &models.ExportWindow{
		Start:    start,
		End:      end,
		RegionID: req.RegionID,
		SiteID:   req.SiteID,
		Months:   reqRange + 1,
	}, nil
}

func (p *ExportPolicy) deny(log *zap.Logger, reason string) error {
	log.Error(reason)
	return appErrors.Clone(appErrors.ErrForbidden, reason)
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
