package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/micronlogivdev/iftaway/internal/model"
)

const (
	reportSheet       = "IFTA Report"
	transactionsSheet = "Transactions"
)

// TaxReportXLSX builds a workbook with the summary and jurisdiction table on
// the first sheet and the in-window transactions on the second
func TaxReportXLSX(report model.TaxReport, p Period, entries []model.FuelEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	// 汇总
	summary := [][]interface{}{{"IFTA Report"}}
	for _, kv := range p.summaryRows() {
		summary = append(summary, []interface{}{kv[0], kv[1]})
	}
	summary = append(summary, []interface{}{"Overall Fleet MPG", report.MPG})
	for i, row := range summary {
		if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}

	// 表头在汇总后空一行
	headerRow := len(summary) + 2
	header := make([]interface{}, len(TaxReportHeader))
	for i, h := range TaxReportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", headerRow), &header); err != nil {
		return nil, err
	}

	for i, r := range report.Rows {
		row := []interface{}{r.Jurisdiction, r.TotalMiles, r.TotalFuel, r.TotalCost}
		if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", headerRow+1+i), &row); err != nil {
			return nil, err
		}
	}

	numFmt := "0.00"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}
	if len(report.Rows) > 0 {
		last := headerRow + len(report.Rows)
		if err := f.SetCellStyle(reportSheet, fmt.Sprintf("B%d", headerRow+1), fmt.Sprintf("D%d", last), style); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(reportSheet, "B4", "B4", style); err != nil {
		return nil, err
	}
	f.SetColWidth(reportSheet, "A", "A", 22)
	f.SetColWidth(reportSheet, "B", "D", 30)

	if err := writeTransactionsSheet(f, entries); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeTransactionsSheet(f *excelize.File, entries []model.FuelEntry) error {
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(TransactionsHeader))
	for i, h := range TransactionsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(transactionsSheet, "A1", &header); err != nil {
		return err
	}

	for i, e := range entries {
		receipt := e.ReceiptURL
		if receipt == "" {
			receipt = "No"
		}
		row := []interface{}{
			e.DateTime.Format("2006-01-02 15:04"),
			e.TruckNumber,
			e.Odometer,
			e.City,
			e.State,
			e.FuelLabel(),
			e.Amount,
			e.Cost,
			receipt,
		}
		if err := f.SetSheetRow(transactionsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	f.SetColWidth(transactionsSheet, "A", "I", 16)
	return nil
}
