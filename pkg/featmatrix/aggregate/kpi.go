package aggregate

import (
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// KPIs summarizes an aggregation result.
type KPIs struct {
	Entities         int              `json:"entities"`
	Records          int              `json:"records"`
	Features         int              `json:"features"`
	Groups           int              `json:"groups"`
	DifferingRecords int              `json:"differingRecords"`
	Coverage         []EntityCoverage `json:"coverage"`
}

// EntityCoverage reports how many records hold data for one entity.
type EntityCoverage struct {
	Entity string `json:"entity"`
	// Filled is the number of records with at least one value for the entity.
	Filled int `json:"filled"`
	// Ratio is Filled divided by the record count, 0 when there are no records.
	Ratio float64 `json:"ratio"`
	// Values is the total of distinct value counts across records.
	Values int `json:"values"`
}

// Summarize computes KPIs over a record list.
func Summarize(entities []string, records []models.Record) KPIs {
	k := KPIs{
		Entities: len(entities),
		Records:  len(records),
		Groups:   len(Groups(records)),
	}

	features := make(map[string]bool)
	for _, r := range records {
		features[r.Feature] = true
		if Differs(r, entities) {
			k.DifferingRecords++
		}
	}
	k.Features = len(features)

	k.Coverage = make([]EntityCoverage, len(entities))
	for i, e := range entities {
		c := EntityCoverage{Entity: e}
		for _, r := range records {
			n := r.Counts[e]
			if n > 0 {
				c.Filled++
			}
			c.Values += n
		}
		if len(records) > 0 {
			c.Ratio = float64(c.Filled) / float64(len(records))
		}
		k.Coverage[i] = c
	}
	return k
}
