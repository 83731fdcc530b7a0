package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/ifta"
	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/service"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// RegisterRoutes 注册路由
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/ifta", h.GetTaxReport)
		reports.GET("/ifta.csv", h.ExportTaxReportCSV)
		reports.GET("/ifta.xlsx", h.ExportTaxReportXLSX)
		reports.GET("/transactions.csv", h.ExportTransactionsCSV)
	}
	r.GET("/dashboard", h.GetDashboard)
}

// reportWindow reads ?start&end (inclusive dates) or ?year&quarter, and
// falls back to the current quarter
func (h *ReportHandler) reportWindow(c *gin.Context) (ifta.Window, export.Period, error) {
	if startStr, endStr := c.Query("start"), c.Query("end"); startStr != "" || endStr != "" {
		start, err := export.ParseDateTime(startStr)
		if err != nil {
			return ifta.Window{}, export.Period{}, fmt.Errorf("%w: start: %v", service.ErrInvalidPeriod, err)
		}
		end, err := export.ParseDateTime(endStr)
		if err != nil {
			return ifta.Window{}, export.Period{}, fmt.Errorf("%w: end: %v", service.ErrInvalidPeriod, err)
		}
		return ifta.NewWindow(start, end), export.RangePeriod(start, end), nil
	}

	year, quarter := h.reports.CurrentQuarter()
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ifta.Window{}, export.Period{}, fmt.Errorf("%w: year %q", service.ErrInvalidPeriod, v)
		}
		year = n
	}
	if v := c.Query("quarter"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ifta.Window{}, export.Period{}, fmt.Errorf("%w: quarter %q", service.ErrInvalidPeriod, v)
		}
		quarter = n
	}

	w, err := h.reports.QuarterWindow(year, quarter)
	if err != nil {
		return ifta.Window{}, export.Period{}, err
	}
	return w, export.Period{Quarter: quarter, Year: year}, nil
}

// GetTaxReport 获取IFTA报表
// @Summary IFTA tax report and insights
// @Description Reports the given quarter, or the inclusive start..end range. Fewer than two entries return status insufficient_data.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year"
// @Param quarter query int false "Quarter (1-4)"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} model.ReportResult
// @Failure 400 {object} ErrorResponse
// @Router /reports/ifta [get]
func (h *ReportHandler) GetTaxReport(c *gin.Context) {
	w, _, err := h.reportWindow(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.reports.GetTaxReport(c.Request.Context(), middleware.UserID(c), w)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportTaxReportCSV 导出IFTA报表CSV
// @Summary Download the IFTA report as CSV
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param year query int false "Year"
// @Param quarter query int false "Quarter (1-4)"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reports/ifta.csv [get]
func (h *ReportHandler) ExportTaxReportCSV(c *gin.Context) {
	w, period, err := h.reportWindow(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.reports.GetTaxReport(c.Request.Context(), middleware.UserID(c), w)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteQuarterlyCSV(&buf, result.TaxReport, period); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.TaxReportFilename(period, "csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportTaxReportXLSX 导出IFTA报表Excel
// @Summary Download the IFTA report and its transactions as XLSX
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param year query int false "Year"
// @Param quarter query int false "Quarter (1-4)"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reports/ifta.xlsx [get]
func (h *ReportHandler) ExportTaxReportXLSX(c *gin.Context) {
	w, period, err := h.reportWindow(c)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := middleware.UserID(c)
	result, err := h.reports.GetTaxReport(c.Request.Context(), userID, w)
	if err != nil {
		respondError(c, err)
		return
	}
	entries, err := h.reports.GetTransactions(c.Request.Context(), userID, w)
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := export.TaxReportXLSX(result.TaxReport, period, entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.TaxReportFilename(period, "xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportTransactionsCSV 导出交易明细CSV
// @Summary Download the fuel transactions of a period as CSV
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reports/transactions.csv [get]
func (h *ReportHandler) ExportTransactionsCSV(c *gin.Context) {
	w, _, err := h.reportWindow(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.reports.GetTransactions(c.Request.Context(), middleware.UserID(c), w)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, entries); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.TransactionsFilename(w.Start, w.End))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetDashboard 获取仪表盘数据
// @Summary Month over month dashboard
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reports.GetDashboardStats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
