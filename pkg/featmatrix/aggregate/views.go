package aggregate

import (
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// FeatureHeader is the row header of a feature-major view.
const FeatureHeader = "Feature"

// View is a plain two-dimensional projection of records.
type View struct {
	// RowHeader names what the row keys are (e.g. "Feature" or the entity column).
	RowHeader string
	// Columns lists the column keys in display order.
	Columns []string
	// Rows holds one entry per row key; Cells align with Columns.
	Rows []ViewRow
}

// ViewRow is one row of a view.
type ViewRow struct {
	Key   string
	Cells []string
}

// Cell returns the cell at (row, col).
func (v View) Cell(row, col string) (string, bool) {
	ci := -1
	for i, c := range v.Columns {
		if c == col {
			ci = i
			break
		}
	}
	if ci < 0 {
		return "", false
	}
	for _, r := range v.Rows {
		if r.Key == row {
			return r.Cells[ci], true
		}
	}
	return "", false
}

// RowKeys returns the row keys in order.
func (v View) RowKeys() []string {
	keys := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		keys[i] = r.Key
	}
	return keys
}

// Groups returns the distinct comparison groups in record order.
func Groups(records []models.Record) []models.GroupKey {
	var out []models.GroupKey
	seen := make(map[models.GroupKey]bool)
	for _, r := range records {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// FeatureMajor projects the records of one group into features x entities.
func FeatureMajor(records []models.Record, entities []string, key models.GroupKey) View {
	v := View{
		RowHeader: FeatureHeader,
		Columns:   append([]string(nil), entities...),
	}
	for _, r := range records {
		if r.Key() != key {
			continue
		}
		cells := make([]string, len(entities))
		for i, e := range entities {
			cells[i] = r.Values[e]
		}
		v.Rows = append(v.Rows, ViewRow{Key: r.Feature, Cells: cells})
	}
	return v
}

// EntityMajor projects the records of one group into entities x features.
// It is the transpose of FeatureMajor.
func EntityMajor(records []models.Record, entities []string, key models.GroupKey, entityHeader string) View {
	return Transpose(FeatureMajor(records, entities, key), entityHeader)
}

// Transpose swaps rows and columns. The old row header becomes the returned
// view's column dimension and rowHeader names the new rows.
func Transpose(v View, rowHeader string) View {
	out := View{
		RowHeader: rowHeader,
		Columns:   v.RowKeys(),
	}
	for ci, c := range v.Columns {
		cells := make([]string, len(v.Rows))
		for ri, r := range v.Rows {
			cells[ri] = r.Cells[ci]
		}
		out.Rows = append(out.Rows, ViewRow{Key: c, Cells: cells})
	}
	return out
}
