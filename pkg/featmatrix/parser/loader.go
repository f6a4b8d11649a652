// Package parser loads spreadsheet files into tables.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// ErrUnsupportedFormat indicates the file extension is not a known table format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates the sheet or range holds no table.
var ErrEmptySheet = errors.New("sheet holds no data")

// LoadOptions selects which part of a file becomes the table.
type LoadOptions struct {
	// Sheet names the worksheet. Empty selects the first sheet.
	Sheet string
	// Range restricts the table to a cell range such as "B3:K200".
	Range string
	// UsePrintArea restricts the table to the sheet's first print area when one is defined.
	UsePrintArea bool
	// Detection tunes header and bounds detection.
	Detection TableDetectionParams
}

func (o LoadOptions) detection() TableDetectionParams {
	if o.Detection == (TableDetectionParams{}) {
		return DefaultTableParams()
	}
	return o.Detection
}

// Format identifies a supported file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat maps a file extension to a format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a table from an xlsx workbook or a CSV file.
func Load(path string, opts LoadOptions) (*models.Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return LoadCSV(path, opts)
	default:
		return LoadXLSX(path, opts)
	}
}

// LoadXLSX reads a table from one sheet of an xlsx workbook.
func LoadXLSX(path string, opts LoadOptions) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	region, err := selectRegion(opts, func() []models.Region {
		return ExtractPrintAreas(f)[sheetName]
	})
	if err != nil {
		return nil, err
	}

	t, err := buildTable(rows, region, opts.detection())
	if err != nil {
		return nil, err
	}
	t.Source = filepath.Base(path)
	t.Sheet = sheetName
	return t, nil
}

// LoadCSV reads a table from a delimited text file.
func LoadCSV(path string, opts LoadOptions) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := ReadCSV(file, opts)
	if err != nil {
		return nil, err
	}
	t.Source = filepath.Base(path)
	return t, nil
}

// ReadCSV reads a table from CSV content. Sheet and print-area options do not apply.
func ReadCSV(r io.Reader, opts LoadOptions) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	region, err := selectRegion(LoadOptions{Range: opts.Range}, nil)
	if err != nil {
		return nil, err
	}
	return buildTable(rows, region, opts.detection())
}

// ListSheets summarizes every sheet of a workbook.
func ListSheets(path string) (*models.WorkbookData, error) {
	if format, err := DetectFormat(path); err != nil {
		return nil, err
	} else if format != FormatXLSX {
		return nil, fmt.Errorf("%w: sheets are only listed for workbooks", ErrUnsupportedFormat)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := ExtractPrintAreas(f)
	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		summary := models.SheetSummary{
			Name:       sheetName,
			PrintAreas: printAreas[sheetName],
		}
		rows, err := f.GetRows(sheetName)
		if err == nil {
			if region, ok := DetectTable(rows, DefaultTableParams()); ok {
				summary.DataRange = RegionRange(region)
				summary.Rows = region.R2 - region.R1 + 1
				summary.Columns = region.C2 - region.C1 + 1
			}
		}
		wb.Sheets = append(wb.Sheets, summary)
	}
	return wb, nil
}

// resolveSheet returns the requested sheet name, or the first sheet when none is requested.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrEmptySheet
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, name, strings.Join(sheets, ", "))
}

// selectRegion picks the explicit range, then the first print area, else the zero region.
func selectRegion(opts LoadOptions, printAreas func() []models.Region) (models.Region, error) {
	if opts.Range != "" {
		return ParseRange(opts.Range)
	}
	if opts.UsePrintArea && printAreas != nil {
		if areas := printAreas(); len(areas) > 0 {
			return areas[0], nil
		}
	}
	return models.Region{}, nil
}
