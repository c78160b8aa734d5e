package usecase

import (
	"context"

	"campaign-report/internal/core/domain"
	"campaign-report/internal/core/port"
)

const (
	msgRetrieved       = "Data retrieved successfully"
	msgNoJoinedData    = "No data found in both tables."
	msgNoCampaignData  = "No data found for the given campaign_id."
	msgNoDataForParams = "No data found for the given parameters."

	msgReadFailed  = "Error reading from database"
	msgTableFailed = "Could not load data for campaignTable"
)

// ReportUseCase implements port.ReportUseCase. It holds no state besides the
// repository, so a single instance serves concurrent requests.
type ReportUseCase struct {
	repo port.ReportRepository
}

// NewReportUseCase creates a new usecase reading from repo.
func NewReportUseCase(repo port.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// GetCampaignReport runs load, join, filter and aggregate for one request.
// Empty intermediate results end the request early with a descriptive
// message and no report. The campaign table is built from a second load
// and ignores the request filters.
func (u *ReportUseCase) GetCampaignReport(ctx context.Context, req port.ReportReq) (*port.ReportResp, error) {
	joined, err := u.loadJoined(ctx, msgReadFailed)
	if err != nil {
		return nil, err
	}
	if len(joined) == 0 {
		return noData(msgNoJoinedData), nil
	}

	rows := filterCampaign(joined, req.CampaignID)
	if len(rows) == 0 {
		return noData(msgNoCampaignData), nil
	}

	window, reason, err := resolveWindow(rows, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return noData(reason), nil
	}

	rows = window.apply(rows)
	if len(rows) == 0 {
		return noData(msgNoDataForParams), nil
	}

	full, err := u.loadJoined(ctx, msgTableFailed)
	if err != nil {
		return nil, err
	}

	return &port.ReportResp{
		Message: msgRetrieved,
		Report: &domain.Report{
			Card:    buildCard(rows, req.CampaignID, window),
			Metrics: sumMetrics(rows),
			Trend:   dailyTrend(rows),
			Table:   summarizeCampaigns(full),
		},
	}, nil
}

// loadJoined reads both tables and joins them. Read failures are wrapped in
// a *port.DataSourceError prefixed with msg.
func (u *ReportUseCase) loadJoined(ctx context.Context, msg string) ([]domain.JoinedRecord, error) {
	campaigns, err := u.repo.ListDailyCampaigns(ctx)
	if err != nil {
		return nil, &port.DataSourceError{Msg: msg, Err: err}
	}
	scores, err := u.repo.ListDailyScores(ctx)
	if err != nil {
		return nil, &port.DataSourceError{Msg: msg, Err: err}
	}
	return joinRecords(campaigns, scores), nil
}

func noData(msg string) *port.ReportResp {
	return &port.ReportResp{Message: msg}
}
