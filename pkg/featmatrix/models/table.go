package models

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
)

// Table is an ordered collection of rows keyed by column name.
// A table is treated as immutable once loaded.
type Table struct {
	// Source is the file the table was loaded from (no path).
	Source string `json:"source,omitempty"`
	// Sheet is the sheet name, empty for delimited-text sources.
	Sheet string `json:"sheet,omitempty"`
	// Columns lists the header names in sheet order. Names are unique.
	Columns []string `json:"columns"`
	// Rows holds the data rows in sheet order.
	Rows []Row `json:"rows"`
}

// NewTable builds a table from a header and rows.
func NewTable(columns []string, rows []Row) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Fingerprint returns a content hash of the header and every cell.
// Two tables with identical content share a fingerprint regardless of source.
func (t *Table) Fingerprint() string {
	h := sha256.New()
	var lenBuf [8]byte
	writeField := func(tag byte, s string) {
		h.Write([]byte{tag})
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}
	for _, c := range t.Columns {
		writeField('h', c)
	}
	for _, row := range t.Rows {
		h.Write([]byte{'r'})
		for _, c := range t.Columns {
			switch v := row[c].(type) {
			case nil:
				h.Write([]byte{'n'})
			case string:
				writeField('s', v)
			case int64:
				writeField('i', strconv.FormatInt(v, 10))
			case float64:
				writeField('f', strconv.FormatUint(math.Float64bits(v), 16))
			default:
				writeField('?', "")
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
