package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// TableDetectionParams holds parameters for locating the table in a sheet.
type TableDetectionParams struct {
	// HeaderFillMin is the minimum share of non-empty cells a row needs to be
	// taken as the header. Sparser rows above it are treated as titles.
	HeaderFillMin float64
	// MinNonemptyCells is the minimum number of non-empty cells for a sheet to hold a table.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		HeaderFillMin:    0.5,
		MinNonemptyCells: 1,
	}
}

// DetectTable finds the bounding region of non-empty cells in a grid.
// It reports false when the grid holds fewer than params.MinNonemptyCells values.
func DetectTable(rows [][]string, params TableDetectionParams) (models.Region, bool) {
	if len(rows) == 0 {
		return models.Region{}, false
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Region{}, false
	}

	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return models.Region{}, false
	}

	return models.Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// RegionRange converts a region to Excel range notation (e.g. "A1:D10").
func RegionRange(r models.Region) string {
	startCell, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	endCell, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// crop returns the cells of grid within region, padded to the region width.
func crop(grid [][]string, r models.Region) [][]string {
	width := r.C2 - r.C1 + 1
	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(grid); rowIdx++ {
		line := make([]string, width)
		src := grid[rowIdx]
		for colIdx := r.C1 - 1; colIdx < r.C2 && colIdx < len(src); colIdx++ {
			line[colIdx-(r.C1-1)] = src[colIdx]
		}
		out = append(out, line)
	}
	return out
}

// findHeaderRow returns the index of the first row dense enough to be a header.
// Falls back to the first row.
func findHeaderRow(rows [][]string, params TableDetectionParams) int {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		filled := countNonEmptyCells(rows, i, i, 0, len(row)-1)
		if float64(filled)/float64(len(row)) >= params.HeaderFillMin {
			return i
		}
	}
	return 0
}

// headerNames trims header cells and makes them unique.
// Blank headers become "Unnamed: N" (0-based column); repeats get ".1", ".2" suffixes.
func headerNames(cells []string) []string {
	out := make([]string, len(cells))
	seen := make(map[string]bool, len(cells))
	repeats := make(map[string]int)
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for seen[name] {
			repeats[base]++
			name = base + "." + strconv.Itoa(repeats[base])
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

// buildTable turns a grid of cell text into a table.
// A zero region means the table spans the detected data bounds.
func buildTable(grid [][]string, region models.Region, params TableDetectionParams) (*models.Table, error) {
	if region.IsZero() {
		detected, ok := DetectTable(grid, params)
		if !ok {
			return nil, ErrEmptySheet
		}
		region = detected
	}

	cells := crop(grid, region)
	if len(cells) == 0 {
		return nil, ErrEmptySheet
	}

	h := findHeaderRow(cells, params)
	header := headerNames(cells[h])
	return models.NewTable(header, ExtractRows(cells[h+1:], header)), nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}
