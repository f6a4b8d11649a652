// Package aggregate pivots a component table into per-entity feature comparisons.
package aggregate

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/cellvalue"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// Options configures aggregation.
type Options struct {
	// Codec serializes value sets. The zero value uses cellvalue.DefaultCodec.
	Codec cellvalue.Codec
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) codec() cellvalue.Codec {
	if o.Codec == (cellvalue.Codec{}) {
		return cellvalue.DefaultCodec
	}
	return o.Codec
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Output holds the sorted entity list and the sorted record list.
type Output struct {
	Entities []string
	Records  []models.Record
}

// featureKey identifies one (group, secondary, feature) record.
type featureKey struct {
	group     string
	secondary string
	feature   string
}

// bag collects raw values per entity for one record.
type bag map[string][]interface{}

// Aggregate groups rows by the three role columns and collapses each feature's
// values per entity. Every record carries a value and a count for every entity.
// The mapping is validated before any grouping; on error no output is returned.
func Aggregate(t *models.Table, m models.RoleMapping, features []string, opts Options) (*Output, error) {
	if err := m.Validate(t); err != nil {
		return nil, err
	}
	for _, f := range features {
		if !t.HasColumn(f) {
			return nil, models.NewConfigError(models.ErrUnknownColumn, []string{"feature"}, f)
		}
	}
	features = withoutRoles(features, m)
	codec := opts.codec()

	// wide -> long: one observation per (row, feature)
	bags := make(map[featureKey]bag)
	entitySet := make(map[string]struct{})
	for _, row := range t.Rows {
		group := keyText(row[m.Group])
		secondary := keyText(row[m.Secondary])
		entity := cellvalue.Text(row[m.Entity])
		if entity != "" {
			entitySet[entity] = struct{}{}
		}
		for _, f := range features {
			k := featureKey{group: group, secondary: secondary, feature: f}
			b, ok := bags[k]
			if !ok {
				b = make(bag)
				bags[k] = b
			}
			b[entity] = append(b[entity], missingIfEmpty(row[f]))
		}
	}

	entities := make([]string, 0, len(entitySet))
	for e := range entitySet {
		entities = append(entities, e)
	}
	sort.Strings(entities)

	records := make([]models.Record, 0, len(bags))
	for k, b := range bags {
		rec := models.Record{
			Group:     k.group,
			Secondary: k.secondary,
			Feature:   k.feature,
			Values:    make(map[string]string, len(entities)),
			Counts:    make(map[string]int, len(entities)),
		}
		for _, e := range entities {
			rec.Values[e] = codec.EmptyToken
			rec.Counts[e] = 0
		}
		for e, raw := range b {
			// blank entities contribute to no column
			if e == "" {
				continue
			}
			set := cellvalue.Set(raw)
			rec.Values[e] = codec.Join(set)
			rec.Counts[e] = len(set)
		}
		records = append(records, rec)
	}
	SortRecords(records)

	opts.logger().Debug("aggregated table",
		zap.Int("rows", len(t.Rows)),
		zap.Int("features", len(features)),
		zap.Int("entities", len(entities)),
		zap.Int("records", len(records)),
	)

	return &Output{Entities: entities, Records: records}, nil
}

// SortRecords orders records by group, secondary key and feature name.
func SortRecords(records []models.Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Secondary != b.Secondary {
			return a.Secondary < b.Secondary
		}
		return a.Feature < b.Feature
	})
}

// Truncate keeps at most limit records. It reports whether records were dropped.
// A non-positive limit keeps everything.
func Truncate(records []models.Record, limit int) ([]models.Record, bool) {
	if limit <= 0 || len(records) <= limit {
		return records, false
	}
	return records[:limit], true
}

// keyText renders a group or secondary key. Missing keys become "".
func keyText(v interface{}) string {
	return cellvalue.Text(v)
}

// missingIfEmpty treats empty strings as missing values.
func missingIfEmpty(v interface{}) interface{} {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}

func withoutRoles(features []string, m models.RoleMapping) []string {
	out := make([]string, 0, len(features))
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if m.IsRole(f) || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
