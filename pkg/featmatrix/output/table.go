package output

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// RenderView renders a view as a bordered plain-text table.
func RenderView(v aggregate.View) string {
	t := newTable(append([]string{v.RowHeader}, v.Columns...)...)
	for _, r := range v.Rows {
		t.Row(append([]string{r.Key}, r.Cells...)...)
	}
	return t.String()
}

// RenderKPIs renders the KPI summary followed by per-entity coverage.
func RenderKPIs(k aggregate.KPIs) string {
	summary := newTable("Metric", "Value").
		Row("Entities", strconv.Itoa(k.Entities)).
		Row("Features", strconv.Itoa(k.Features)).
		Row("Groups", strconv.Itoa(k.Groups)).
		Row("Records", strconv.Itoa(k.Records)).
		Row("Differing records", strconv.Itoa(k.DifferingRecords))

	coverage := newTable("Entity", "Filled", "Coverage", "Values")
	for _, c := range k.Coverage {
		coverage.Row(c.Entity, strconv.Itoa(c.Filled), fmt.Sprintf("%.1f%%", c.Ratio*100), strconv.Itoa(c.Values))
	}
	return summary.String() + "\n" + coverage.String()
}

// RenderMapping renders the detected and effective role mapping with the feature list.
func RenderMapping(detected, effective models.RoleMapping, features []string) string {
	roles := newTable("Role", "Detected", "Used").
		Row(models.RoleGroup, detected.Group, effective.Group).
		Row(models.RoleSecondary, detected.Secondary, effective.Secondary).
		Row(models.RoleEntity, detected.Entity, effective.Entity)

	feats := newTable("#", "Feature")
	for i, f := range features {
		feats.Row(strconv.Itoa(i+1), f)
	}
	return roles.String() + "\n" + feats.String()
}

// RenderSheets renders a workbook sheet listing.
func RenderSheets(wb *models.WorkbookData) string {
	t := newTable("Sheet", "Data range", "Rows", "Columns", "Print areas")
	for _, s := range wb.Sheets {
		t.Row(s.Name, s.DataRange, strconv.Itoa(s.Rows), strconv.Itoa(s.Columns), strconv.Itoa(len(s.PrintAreas)))
	}
	return t.String()
}
