package models

import "time"

// ExportRequest is the transient input of an export call.
type ExportRequest struct {
	UserID    int64
	RegionID  int64
	SiteID    int64
	Format    string
	StartDate string
	EndDate   string
}

// ExportWindow bounds the export query. End is the requested day advanced to 23:59:59.
type ExportWindow struct {
	Start    time.Time
	End      time.Time
	RegionID int64
	SiteID   int64
	Months   int
}

// ExportResult is returned to the caller once the file has been stored.
type ExportResult struct {
	ID           string
	Format       string
	Rows         int
	DownloadPath string
	ExpiresAt    time.Time
}

// ExportDownload describes a stored export ready to stream.
type ExportDownload struct {
	Filename    string
	ContentType string
	Size        int64
}
