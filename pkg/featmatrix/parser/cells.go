package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// ExtractRows converts a grid of cell text into table rows keyed by header.
// Empty cells are left out of the row map and read back as missing.
// Rows without any non-empty cell are skipped.
func ExtractRows(grid [][]string, header []string) []models.Row {
	var result []models.Row
	for _, line := range grid {
		row := make(models.Row)
		hasData := false

		for colIdx, cellValue := range line {
			if colIdx >= len(header) {
				break
			}
			if strings.TrimSpace(cellValue) == "" {
				continue
			}
			hasData = true
			row[header[colIdx]] = parseValue(cellValue)
		}

		if hasData {
			result = append(result, row)
		}
	}

	return result
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Only text that formats back unchanged is converted, so codes such as
// "0402", "+5", "1.50" or long serials keep their exact spelling.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) == s {
			return i
		}
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		if strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	// Return as string
	return s
}
