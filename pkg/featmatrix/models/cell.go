// Package models defines data structures shared by the loader, resolver and aggregation engine.
package models

// Value is a single cell value: nil (missing), string, int64 or float64.
type Value = interface{}

// Row maps column name to cell value. Columns absent from the map are missing.
type Row map[string]Value
