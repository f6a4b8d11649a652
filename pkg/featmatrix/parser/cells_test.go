package parser

import (
	"testing"
)

func TestExtractRows(t *testing.T) {
	header := []string{"Header1", "Header2"}
	grid := [][]string{
		{"100", "200.5"},
		{"", " "},
		{"Text"},
		{"0402", "x", "ignored"},
	}

	rows := ExtractRows(grid, header)

	// Verify results
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	// Check numeric values
	if rows[0]["Header1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[0]["Header1"], rows[0]["Header1"])
	}
	if rows[0]["Header2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[0]["Header2"])
	}

	// Missing cells are absent from the row
	if _, ok := rows[1]["Header2"]; ok {
		t.Errorf("Expected Header2 to be missing, got %v", rows[1]["Header2"])
	}
	if rows[2]["Header1"] != "0402" {
		t.Errorf("Expected '0402' to stay a string, got %v (type: %T)", rows[2]["Header1"], rows[2]["Header1"])
	}
	if len(rows[2]) != 2 {
		t.Errorf("Expected cells beyond the header to be dropped, got %v", rows[2])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"0", int64(0)},
		{"0.5", 0.5},
		{"hello", "hello"},
		{"", ""},
		{"0402", "0402"},
		{"+5", "+5"},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"5V", "5V"},
		{"-0", "-0"},
		{"1.50", "1.50"},
		{".5", ".5"},
		{"1E3", "1E3"},
		{"12345678901234567890", "12345678901234567890"},
		{"12345678901234567891", "12345678901234567891"},
		{"9223372036854775807", int64(9223372036854775807)},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
