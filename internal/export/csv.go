// Package export renders reports and entries into downloadable files
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// TaxReportHeader is the column header of the jurisdiction table
var TaxReportHeader = []string{
	"Jurisdiction",
	"Total Miles Driven",
	"Total Fuel Purchased (Gallons)",
	"Total Fuel Cost ($)",
}

// TransactionsHeader is the column header of the transaction list
var TransactionsHeader = []string{
	"Date", "Truck Number", "Odometer", "City", "State",
	"Fuel Type", "Amount (Gallons)", "Cost ($)", "Receipt",
}

// Period labels an export. Quarter is 0 for a custom date range, which is
// then labelled by Start and End.
type Period struct {
	Quarter int
	Year    int
	Start   time.Time
	End     time.Time
}

// RangePeriod labels a custom date range
func RangePeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// IsQuarter reports whether p names a calendar quarter
func (p Period) IsQuarter() bool {
	return p.Quarter != 0
}

// summaryRows are the label/value pairs above the jurisdiction table
func (p Period) summaryRows() [][2]string {
	if p.IsQuarter() {
		return [][2]string{
			{"Quarter", fmt.Sprintf("Q%d", p.Quarter)},
			{"Year", strconv.Itoa(p.Year)},
		}
	}
	return [][2]string{
		{"From", p.Start.Format("2006-01-02")},
		{"To", p.End.Format("2006-01-02")},
	}
}

// WriteTaxReportCSV writes the jurisdiction table: the header row, then one
// row per jurisdiction with numbers at two decimals.
func WriteTaxReportCSV(w io.Writer, report model.TaxReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TaxReportHeader); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{
			row.Jurisdiction,
			money(row.TotalMiles),
			money(row.TotalFuel),
			money(row.TotalCost),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteQuarterlyCSV prefixes the jurisdiction table with a summary block
// naming the period and fleet MPG. A custom range gets From/To lines
// instead of Quarter/Year.
func WriteQuarterlyCSV(w io.Writer, report model.TaxReport, p Period) error {
	var sb strings.Builder
	sb.WriteString("IFTA Report\n")
	for _, kv := range p.summaryRows() {
		fmt.Fprintf(&sb, "%s,%s\n", kv[0], kv[1])
	}
	fmt.Fprintf(&sb, "Overall Fleet MPG,%s\n\n", money(report.MPG))
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	return WriteTaxReportCSV(w, report)
}

// WriteTransactionsCSV writes one row per entry in the given order
func WriteTransactionsCSV(w io.Writer, entries []model.FuelEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TransactionsHeader); err != nil {
		return err
	}
	for _, e := range entries {
		receipt := e.ReceiptURL
		if receipt == "" {
			receipt = "No"
		}
		record := []string{
			e.DateTime.Format("1/2/2006"),
			e.TruckNumber,
			strconv.FormatFloat(e.Odometer, 'f', -1, 64),
			e.City,
			e.State,
			e.FuelLabel(),
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			money(e.Cost),
			receipt,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TaxReportFilename names a report download
func TaxReportFilename(p Period, ext string) string {
	if !p.IsQuarter() {
		return fmt.Sprintf("IFTA_Report_%s_to_%s.%s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), ext)
	}
	return fmt.Sprintf("IFTA_Report_Q%d_%d.%s", p.Quarter, p.Year, ext)
}

// TransactionsFilename names a transaction list download
func TransactionsFilename(start, end time.Time) string {
	return fmt.Sprintf("Fuel_Transactions_%s_to_%s.csv", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
