// Package output serializes results as JSON, CSV and plain terminal tables.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// ToJSON serializes a result as {meta, companies, records}.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// WorkbookToJSON serializes a sheet listing.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// KPIsToJSON serializes a KPI summary.
func KPIsToJSON(k aggregate.KPIs, pretty bool) ([]byte, error) {
	return marshal(k, pretty)
}

// marshal encodes v without HTML escaping so values such as "<5V" stay readable.
func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
