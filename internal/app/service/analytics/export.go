package analytics

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Daily Scans"

// ExportDaily builds an xlsx workbook with the daily series for the last
// days days. The caller owns the file and should Close it.
func (s *Service) ExportDaily(ctx context.Context, userID string, days int) (*excelize.File, error) {
	items, err := s.GetDailyStats(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	headers := []string{"Date", "Scans", "Calories", "Products"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, item := range items {
		values := []interface{}{item.Date, item.Scans, item.Calories, item.ProductCount}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
