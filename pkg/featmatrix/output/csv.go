package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// WriteViewCSV writes a view with the row header as the first column.
func WriteViewCSV(w io.Writer, v aggregate.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{v.RowHeader}, v.Columns...)); err != nil {
		return err
	}
	for _, r := range v.Rows {
		if err := cw.Write(append([]string{r.Key}, r.Cells...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecordsCSV writes the flat record list: one line per (record, entity)
// with the display value and its distinct-value count.
func WriteRecordsCSV(w io.Writer, res *models.Result) error {
	cw := csv.NewWriter(w)
	header := []string{res.Meta.GroupCol, res.Meta.SecondaryCol, aggregate.FeatureHeader, res.Meta.EntityCol, "Value", "Count"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range res.Records {
		for _, e := range res.Entities {
			line := []string{r.Group, r.Secondary, r.Feature, e, r.Values[e], strconv.Itoa(r.Counts[e])}
			if err := cw.Write(line); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
