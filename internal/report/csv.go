// Package report renders weekly projections into tabular sinks.
package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/rhizvo/Budget-Planner/internal/forecast"
)

// Fixed leading columns of the weekly report.
var leadingColumns = []string{
	"Week of Year",
	"Week Start Date",
	"Week End Date",
	"Income Received",
	"Total Weekly Expenses",
	"Savings Transferred",
}

// WriteCSV renders the projection as CSV.
//
// The fixed columns come first, followed by one "Saved: <target>" column
// per savings target and the running balance. The sparse expense breakdown
// columns follow in sorted order; weeks without an occurrence of a line get
// an empty cell. All amounts are rendered with two decimal places.
func WriteCSV(w io.Writer, rows []forecast.WeekRow) error {
	if len(rows) == 0 {
		return nil
	}

	targets := make(map[string]bool)
	breakdown := make(map[forecast.BreakdownKey]bool)
	for _, row := range rows {
		for name := range row.SavingsBalances {
			targets[name] = true
		}
		for key := range row.Breakdown {
			breakdown[key] = true
		}
	}

	targetColumns := make([]string, 0, len(targets))
	for name := range targets {
		targetColumns = append(targetColumns, name)
	}
	sort.Strings(targetColumns)

	breakdownColumns := make([]forecast.BreakdownKey, 0, len(breakdown))
	for key := range breakdown {
		breakdownColumns = append(breakdownColumns, key)
	}
	sort.Slice(breakdownColumns, func(i, j int) bool {
		return breakdownColumns[i].String() < breakdownColumns[j].String()
	})

	header := append([]string{}, leadingColumns...)
	for _, name := range targetColumns {
		header = append(header, "Saved: "+name)
	}
	header = append(header, "Running Balance at End of Week")
	for _, key := range breakdownColumns {
		header = append(header, key.String())
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.WeekOfYear),
			row.WeekStart.String(),
			row.WeekEnd.String(),
			row.Income.StringFixed(2),
			row.TotalExpenses.StringFixed(2),
			row.TotalSavings.StringFixed(2),
		}

		for _, name := range targetColumns {
			record = append(record, row.SavingsBalances[name].StringFixed(2))
		}

		record = append(record, row.RunningBalance.StringFixed(2))

		for _, key := range breakdownColumns {
			amount, ok := row.Breakdown[key]
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, amount.StringFixed(2))
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
