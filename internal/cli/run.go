package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/ifta"
	"github.com/micronlogivdev/iftaway/internal/model"
)

// Run builds a report from an import file without a database. args excludes
// the program name.
func Run(args []string, stdout io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("ifta", flag.ContinueOnError)
	fs.SetOutput(stdout)

	file := fs.String("file", "", "Fuel entries to report on (CSV or XLSX in import format)")
	year := fs.Int("year", 0, "Report year (defaults to the quarter of the newest entry)")
	quarter := fs.Int("quarter", 0, "Report quarter, 1-4")
	start := fs.String("start", "", "Custom range start date (YYYY-MM-DD)")
	end := fs.String("end", "", "Custom range end date (YYYY-MM-DD)")
	csvOut := fs.String("csv", "", "Also write the quarterly CSV to this path")
	xlsxOut := fs.String("xlsx", "", "Also write the XLSX workbook to this path")
	chart := fs.Bool("chart", true, "Print the monthly cost chart")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		fs.Usage()
		return errors.New("-file is required")
	}

	entries, err := readEntries(*file)
	if err != nil {
		return err
	}

	w, period, err := resolveWindow(entries, *year, *quarter, *start, *end)
	if err != nil {
		return err
	}

	result, err := ifta.Generate(ifta.ReportInput{
		Entries: entries,
		Window:  w,
		Now:     now,
	})
	if errors.Is(err, ifta.ErrInsufficientData) {
		fmt.Fprintln(stdout, mutedStyle.Render(err.Error()))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, RenderTaxReport(result, period))
	fmt.Fprintln(stdout, RenderInsights(result.Insights))
	if *chart {
		fmt.Fprintln(stdout, RenderMonthlyCosts(ifta.MonthlyCosts(entries, now, ifta.DashboardMonths), 48, 8))
	}

	if *csvOut != "" {
		if err := writeFile(*csvOut, func(f io.Writer) error {
			return export.WriteQuarterlyCSV(f, result.TaxReport, period)
		}); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *csvOut)
	}
	if *xlsxOut != "" {
		buf, err := export.TaxReportXLSX(result.TaxReport, period, ifta.FilterEntries(entries, w))
		if err != nil {
			return err
		}
		if err := os.WriteFile(*xlsxOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *xlsxOut, err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *xlsxOut)
	}

	return nil
}

func readEntries(path string) ([]model.FuelEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return export.ReadEntriesXLSX(f, 0)
	}
	return export.ReadEntriesCSV(f, 0)
}

// resolveWindow prefers an explicit range, then year/quarter, then the
// quarter holding the newest entry
func resolveWindow(entries []model.FuelEntry, year, quarter int, start, end string) (ifta.Window, export.Period, error) {
	if start != "" || end != "" {
		s, err := export.ParseDateTime(start)
		if err != nil {
			return ifta.Window{}, export.Period{}, err
		}
		e, err := export.ParseDateTime(end)
		if err != nil {
			return ifta.Window{}, export.Period{}, err
		}
		return ifta.NewWindow(s, e), export.RangePeriod(s, e), nil
	}

	if year == 0 || quarter == 0 {
		var newest time.Time
		for _, e := range entries {
			if e.DateTime.After(newest) {
				newest = e.DateTime
			}
		}
		if year == 0 {
			year = newest.Year()
		}
		if quarter == 0 {
			quarter = ifta.QuarterOf(newest)
		}
	}
	if quarter < 1 || quarter > 4 {
		return ifta.Window{}, export.Period{}, fmt.Errorf("quarter must be 1 to 4, got %d", quarter)
	}

	return ifta.QuarterWindow(year, quarter, time.UTC), export.Period{Quarter: quarter, Year: year}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
