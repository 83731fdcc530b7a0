package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/micronlogivdev/iftaway/internal/ifta"
	"github.com/micronlogivdev/iftaway/internal/model"
	"github.com/micronlogivdev/iftaway/internal/store"
)

// ErrInvalidPeriod is returned for a malformed reporting period
var ErrInvalidPeriod = errors.New("invalid reporting period")

// ReportService 报表服务，报表按需计算，不落库
type ReportService struct {
	store  store.Store
	events EventPublisher
	now    func() time.Time
	loc    *time.Location
}

// NewReportService 创建报表服务
func NewReportService(st store.Store, events EventPublisher) *ReportService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ReportService{
		store:  st,
		events: events,
		now:    time.Now,
		loc:    time.UTC,
	}
}

// SetClock replaces the clock used for forecasts, dashboards and the default quarter
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// reportSummary is the event payload of a generated report
type reportSummary struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Jurisdictions int       `json:"jurisdictions"`
	TotalMiles    float64   `json:"totalMiles"`
	MPG           float64   `json:"mpg"`
}

// GetTaxReport builds the tax report and insights for a window. It returns
// ifta.ErrInsufficientData when the window holds fewer than two entries.
func (s *ReportService) GetTaxReport(ctx context.Context, userID int, w ifta.Window) (*model.ReportResult, error) {
	if w.End.Before(w.Start) {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidPeriod)
	}

	entries, err := s.store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	trucks, err := s.store.ListTrucks(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := ifta.Generate(ifta.ReportInput{
		Entries: entries,
		Trucks:  trucks,
		Window:  w,
		Now:     s.now(),
	})
	if err != nil {
		return nil, err
	}

	var miles float64
	for _, row := range result.TaxReport.Rows {
		miles += row.TotalMiles
	}
	summary := reportSummary{
		Start:         result.Start,
		End:           result.End,
		Jurisdictions: len(result.TaxReport.Rows),
		TotalMiles:    miles,
		MPG:           result.TaxReport.MPG,
	}
	if err := s.events.Publish(ctx, NewEvent(EventReportGenerated, userID, summary)); err != nil {
		log.Printf("[Report] Failed to publish report event for user %d: %v", userID, err)
	}

	return result, nil
}

// GetQuarterReport builds the report for calendar quarter 1..4 of year
func (s *ReportService) GetQuarterReport(ctx context.Context, userID, year, quarter int) (*model.ReportResult, error) {
	w, err := s.QuarterWindow(year, quarter)
	if err != nil {
		return nil, err
	}
	return s.GetTaxReport(ctx, userID, w)
}

// QuarterWindow validates year and quarter and returns the window
func (s *ReportService) QuarterWindow(year, quarter int) (ifta.Window, error) {
	if quarter < 1 || quarter > 4 {
		return ifta.Window{}, fmt.Errorf("%w: quarter must be 1 to 4", ErrInvalidPeriod)
	}
	if year < 1970 || year > 9999 {
		return ifta.Window{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	return ifta.QuarterWindow(year, quarter, s.loc), nil
}

// CurrentQuarter returns the year and quarter of the service clock
func (s *ReportService) CurrentQuarter() (year, quarter int) {
	now := s.now().In(s.loc)
	return now.Year(), ifta.QuarterOf(now)
}

// GetTransactions returns the reportable entries of a window, oldest first
func (s *ReportService) GetTransactions(ctx context.Context, userID int, w ifta.Window) ([]model.FuelEntry, error) {
	entries, err := s.store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := ifta.FilterEntries(entries, w)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateTime.Before(filtered[j].DateTime)
	})
	return filtered, nil
}

// GetDashboardStats 获取仪表盘统计
func (s *ReportService) GetDashboardStats(ctx context.Context, userID int) (*model.DashboardStats, error) {
	entries, err := s.store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := ifta.Dashboard(entries, s.now().In(s.loc))
	return &stats, nil
}
