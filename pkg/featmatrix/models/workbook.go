package models

// WorkbookData represents a workbook-level listing of sheets.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}
