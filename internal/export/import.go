package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// ImportHeader lists the import columns in template order
var ImportHeader = []string{
	"truckNumber", "dateTime", "odometer", "city", "state",
	"fuelType", "amount", "cost", "customFuelType", "receiptUrl",
}

// 必需列
var requiredImportColumns = ImportHeader[:8]

// ImportSheet is the worksheet name of the XLSX import template
const ImportSheet = "Fuel Entries"

// ErrInvalidImport wraps every header or row problem in an import file
var ErrInvalidImport = errors.New("invalid import file")

// RowError describes one rejected data row, numbered as in the file
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportError collects all rejected rows of an import
type ImportError struct {
	Rows []RowError
}

func (e *ImportError) Error() string {
	if len(e.Rows) == 0 {
		return ErrInvalidImport.Error()
	}
	return fmt.Sprintf("%d invalid rows, row %d: %s", len(e.Rows), e.Rows[0].Row, e.Rows[0].Message)
}

func (e *ImportError) Unwrap() error {
	return ErrInvalidImport
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ReadEntriesCSV parses an import CSV into entries owned by userID. Either
// every row is valid or nothing is returned.
func ReadEntriesCSV(r io.Reader, userID int) ([]model.FuelEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return parseEntryRows(rows, userID)
}

// ReadEntriesXLSX parses the first worksheet, preferring the template sheet
func ReadEntriesXLSX(r io.Reader, userID int) ([]model.FuelEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidImport)
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if name == ImportSheet {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return parseEntryRows(rows, userID)
}

func parseEntryRows(rows [][]string, userID int) ([]model.FuelEntry, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: a header and at least one data row are required", ErrInvalidImport)
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, col := range requiredImportColumns {
		if _, ok := columns[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrInvalidImport, col)
		}
	}

	cell := func(row []string, col string) string {
		if idx, ok := columns[strings.ToLower(col)]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	entries := make([]model.FuelEntry, 0, len(rows)-1)
	var rowErrors []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		entry, err := parseEntryRow(func(col string) string { return cell(row, col) })
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		entry.UserID = userID
		entries = append(entries, entry)
	}

	if len(rowErrors) > 0 {
		return nil, &ImportError{Rows: rowErrors}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrInvalidImport)
	}
	return entries, nil
}

func parseEntryRow(get func(col string) string) (model.FuelEntry, error) {
	var entry model.FuelEntry

	entry.TruckNumber = get("truckNumber")
	if entry.TruckNumber == "" {
		return entry, errors.New("truckNumber is required")
	}

	dt, err := ParseDateTime(get("dateTime"))
	if err != nil {
		return entry, err
	}
	entry.DateTime = dt

	if entry.Odometer, err = parseAmount(get("odometer"), "odometer"); err != nil {
		return entry, err
	}

	entry.City = get("city")
	entry.State = strings.ToUpper(get("state"))
	if entry.City == "" || entry.State == "" {
		return entry, errors.New("city and state are required")
	}

	entry.FuelType = model.FuelType(strings.ToLower(get("fuelType")))
	if !entry.FuelType.Valid() {
		return entry, fmt.Errorf("unknown fuelType %q", get("fuelType"))
	}
	entry.CustomFuelType = get("customFuelType")
	if entry.FuelType == model.FuelTypeCustom && entry.CustomFuelType == "" {
		return entry, errors.New("customFuelType is required for custom fuel")
	}

	if entry.Amount, err = parseAmount(get("amount"), "amount"); err != nil {
		return entry, err
	}
	if entry.Cost, err = parseAmount(get("cost"), "cost"); err != nil {
		return entry, err
	}
	entry.ReceiptURL = get("receiptUrl")

	return entry, nil
}

// ParseDateTime accepts RFC 3339 and the common spreadsheet date formats.
// Values without a zone are read as UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateTime %q", s)
}

func parseAmount(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ImportTemplateXLSX builds an empty import workbook with one example row
func ImportTemplateXLSX() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ImportSheet); err != nil {
		return nil, err
	}

	for i, h := range ImportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ImportSheet, cell, h)
	}

	example := []interface{}{"T-101", "2024-01-15 08:30", 120500, "Dallas", "TX", "diesel", 110.5, 420.75, "", ""}
	for i, v := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(ImportSheet, cell, v)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(ImportSheet, "A1", "J1", headerStyle)
	}
	f.SetColWidth(ImportSheet, "A", "J", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write template: %w", err)
	}
	return buf, nil
}
