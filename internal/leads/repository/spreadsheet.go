package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	leadserrors "radar/internal/leads/errors"
	"radar/internal/leads/normalizer"
)

type spreadsheetSource struct {
	path  string
	sheet string
}

// NewSpreadsheetSource reads an .xlsx workbook. An empty sheet name selects
// the first sheet.
func NewSpreadsheetSource(path, sheet string) LeadSource {
	return &spreadsheetSource{path: path, sheet: sheet}
}

func (s *spreadsheetSource) Name() string {
	return "spreadsheet:" + s.path
}

func (s *spreadsheetSource) Load(ctx context.Context) ([]normalizer.Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", leadserrors.ErrSourceUnreadable, s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no sheets", leadserrors.ErrSourceUnreadable, s.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", leadserrors.ErrSourceUnreadable, sheet, err)
	}

	return rowsFromGrid(ctx, rows)
}

// rowsFromGrid turns a header row plus data rows into keyed rows. Blank
// cells are nulls; rows with every cell blank are skipped.
func rowsFromGrid(ctx context.Context, grid [][]string) ([]normalizer.Row, error) {
	if len(grid) == 0 {
		return []normalizer.Row{}, nil
	}

	header := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		header[i] = strings.TrimSpace(h)
	}

	out := make([]normalizer.Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := make(normalizer.Row, len(header))
		blank := true
		for i, column := range header {
			if column == "" {
				continue
			}
			if i >= len(cells) || strings.TrimSpace(cells[i]) == "" {
				row[column] = nil
				continue
			}
			row[column] = cells[i]
			blank = false
		}
		if !blank {
			out = append(out, row)
		}
	}

	return out, nil
}
