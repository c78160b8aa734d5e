package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"campaign-report/internal/core/domain"
	"campaign-report/internal/core/port"
	"campaign-report/internal/observability"
)

// handleCampaignReport serves GET /api/campaigns. It accepts optional
// `campaign_id`, `start_date` and `end_date` (YYYY-MM-DD) query parameters
// and always answers 200 with the {success, message, data} envelope:
// success=false for malformed dates and store failures, success=true with
// an empty data object when nothing matched.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	var (
		start = time.Now()
		q     = r.URL.Query()
		req   = port.ReportReq{
			CampaignID: q.Get("campaign_id"),
			StartDate:  q.Get("start_date"),
			EndDate:    q.Get("end_date"),
		}
	)

	resp, err := h.svc.GetCampaignReport(r.Context(), req)
	env, outcome := h.present(r, resp, err)
	observability.ObserveReport(outcome, time.Since(start))
	h.writeJSON(w, http.StatusOK, env)
}

// present turns a use case result into the response envelope and the
// outcome label used for metrics.
func (h *Handler) present(r *http.Request, resp *port.ReportResp, err error) (envelope, string) {
	var (
		vErr  *port.ValidationError
		dsErr *port.DataSourceError
		reqID = slog.String("request_id", requestIDFrom(r.Context()))
	)
	switch {
	case errors.As(err, &vErr):
		h.logger.Warn("invalid report request", reqID, slog.String("field", vErr.Field), slog.String("value", vErr.Value))
		return failure(err), observability.OutcomeInvalid
	case errors.As(err, &dsErr):
		h.logger.Error("report data source error", reqID, slog.Any("error", err))
		return failure(err), observability.OutcomeSourceError
	case err != nil:
		h.logger.Error("report error", reqID, slog.Any("error", err))
		return failure(err), observability.OutcomeError
	case resp == nil:
		return envelope{Success: true, Data: struct{}{}}, observability.OutcomeEmpty
	case resp.Report == nil:
		return envelope{Success: true, Message: resp.Message, Data: struct{}{}}, observability.OutcomeEmpty
	default:
		return envelope{Success: true, Message: resp.Message, Data: newReportDTO(resp.Report)}, observability.OutcomeOK
	}
}

func failure(err error) envelope {
	return envelope{Success: false, Message: err.Error(), Data: struct{}{}}
}

// envelope wraps every report response. Data is {} when there is no report.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type reportDTO struct {
	CampaignCard        campaignCardDTO        `json:"campaignCard"`
	PerformanceMetrics  performanceMetricsDTO  `json:"performanceMetrics"`
	VolumeUnitCostTrend volumeUnitCostTrendDTO `json:"volumeUnitCostTrend"`
	CampaignTable       campaignTableDTO       `json:"campaignTable"`
}

type campaignCardDTO struct {
	CampaignName string `json:"campaignName"`
	Range        string `json:"range"`
	Days         int    `json:"days"`
}

type performanceMetricsDTO struct {
	CurrentMetrics currentMetricsDTO `json:"currentMetrics"`
}

type currentMetricsDTO struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Views       int64 `json:"views"`
}

type volumeUnitCostTrendDTO struct {
	ImpressionsCPM impressionsCPMDTO `json:"impressionsCpm"`
}

// impressionsCPMDTO maps YYYY-MM-DD keys to values. encoding/json sorts map
// keys, which for this layout is chronological order.
type impressionsCPMDTO struct {
	Impression map[string]int64   `json:"impression"`
	CPM        map[string]float64 `json:"cpm"`
}

// campaignTableDTO is column oriented: index i of every slice describes the
// same campaign.
type campaignTableDTO struct {
	StartDate     []string `json:"start_date"`
	EndDate       []string `json:"end_date"`
	AdinID        []string `json:"adin_id"`
	Campaign      []string `json:"campaign"`
	Effectiveness []int64  `json:"effectiveness"`
	Media         []int64  `json:"media"`
	Creative      []int64  `json:"creative"`
}

func newReportDTO(rep *domain.Report) reportDTO {
	trend := impressionsCPMDTO{
		Impression: make(map[string]int64, len(rep.Trend)),
		CPM:        make(map[string]float64, len(rep.Trend)),
	}
	for _, p := range rep.Trend {
		key := p.Date.Format(domain.DayLayout)
		trend.Impression[key] = p.Impressions
		trend.CPM[key] = p.CPM
	}

	return reportDTO{
		CampaignCard: campaignCardDTO{
			CampaignName: rep.Card.CampaignName,
			Range:        rep.Card.Range(),
			Days:         rep.Card.Days,
		},
		PerformanceMetrics: performanceMetricsDTO{
			CurrentMetrics: currentMetricsDTO{
				Impressions: rep.Metrics.Impressions,
				Clicks:      rep.Metrics.Clicks,
				Views:       rep.Metrics.Views,
			},
		},
		VolumeUnitCostTrend: volumeUnitCostTrendDTO{ImpressionsCPM: trend},
		CampaignTable:       transposeTable(rep.Table),
	}
}

func transposeTable(rows []domain.CampaignSummary) campaignTableDTO {
	t := campaignTableDTO{
		StartDate:     make([]string, 0, len(rows)),
		EndDate:       make([]string, 0, len(rows)),
		AdinID:        make([]string, 0, len(rows)),
		Campaign:      make([]string, 0, len(rows)),
		Effectiveness: make([]int64, 0, len(rows)),
		Media:         make([]int64, 0, len(rows)),
		Creative:      make([]int64, 0, len(rows)),
	}
	for _, s := range rows {
		t.StartDate = append(t.StartDate, s.StartDate.Format(domain.DayLayout))
		t.EndDate = append(t.EndDate, s.EndDate.Format(domain.DayLayout))
		t.AdinID = append(t.AdinID, s.CampaignID)
		t.Campaign = append(t.Campaign, s.CampaignName)
		t.Effectiveness = append(t.Effectiveness, s.Effectiveness)
		t.Media = append(t.Media, s.Media)
		t.Creative = append(t.Creative, s.Creative)
	}
	return t
}
