package port

import (
	"context"

	"campaign-report/internal/core/domain"
)

// ReportUseCase builds campaign reports. This interface is the primary port
// into the application domain.
type ReportUseCase interface {
	// GetCampaignReport loads both sources, joins, filters and aggregates
	// them. A nil Report in the response means there was no data to report,
	// which is not an error. Errors are either *DataSourceError or
	// *ValidationError.
	GetCampaignReport(ctx context.Context, req ReportReq) (*ReportResp, error)
}

// ReportReq carries the raw request parameters. Empty strings mean the
// parameter was not supplied.
type ReportReq struct {
	CampaignID string
	StartDate  string
	EndDate    string
}

// ReportResp is the outcome of a successful report request.
type ReportResp struct {
	Message string
	Report  *domain.Report
}
