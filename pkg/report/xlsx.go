// Package report renders plan output as spreadsheets for the farm office.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"irrig/entities"
)

// ScheduleWorkbook builds an XLSX with one row per schedule entry plus the
// run summary. The caller owns the returned file and must Close it.
func ScheduleWorkbook(run *entities.PlanRun, entries []entities.ScheduleEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Field", "Start", "End", "Minutes", "Liters"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, e := range entries {
		row := i + 2
		values := []any{
			e.FieldID,
			e.StartTS.Format("15:04"),
			e.EndTS.Format("15:04"),
			e.Minutes,
			e.Liters,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	summaryRow := len(entries) + 3
	summary := fmt.Sprintf("%s | controller=%s solver=%s | total %.1f L / %.1f min | savings vs baseline %.1f%%",
		run.Date.Format("2006-01-02"), run.Controller, run.Solver, run.TotalLiters, run.TotalMinutes, run.SavingsPct)
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	if err := f.SetCellValue("Schedule", cell, summary); err != nil {
		return nil, err
	}

	return f, nil
}
