package models

// SheetSummary describes one worksheet of a workbook.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:F120").
	DataRange string `json:"data_range,omitempty"`
	// Rows is the number of rows inside the data range, header included.
	Rows int `json:"rows"`
	// Columns is the number of columns inside the data range.
	Columns int `json:"columns"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []Region `json:"print_areas,omitempty"`
}
