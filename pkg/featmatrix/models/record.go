package models

// Record is the aggregate for one (group, secondary, feature) triple.
// Values and Counts always hold exactly one key per entity of the result.
type Record struct {
	Group     string            `json:"tier1"`
	Secondary string            `json:"dieFamily"`
	Feature   string            `json:"feature"`
	Values    map[string]string `json:"values"`
	Counts    map[string]int    `json:"counts"`
}

// GroupKey identifies one (group, secondary) comparison group.
type GroupKey struct {
	Group     string `json:"tier1"`
	Secondary string `json:"dieFamily"`
}

// Key returns the record's comparison group.
func (r Record) Key() GroupKey {
	return GroupKey{Group: r.Group, Secondary: r.Secondary}
}

// Meta describes how a result was produced.
type Meta struct {
	FileName     string `json:"fileName"`
	Sheet        string `json:"sheet,omitempty"`
	GroupCol     string `json:"tier1Col"`
	SecondaryCol string `json:"diefamCol"`
	EntityCol    string `json:"latestCol"`
	FeatureCount int    `json:"featureCount"`
	RecordCount  int    `json:"recordCount"`
	// TotalRecords is the record count before the record cap was applied.
	TotalRecords int  `json:"totalRecords"`
	Truncated    bool `json:"truncated,omitempty"`
}

// Result is the full output of one aggregation run.
type Result struct {
	Meta     Meta        `json:"meta"`
	Mapping  RoleMapping `json:"-"`
	Features []string    `json:"-"`
	Entities []string    `json:"companies"`
	Records  []Record    `json:"records"`
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Features = append([]string(nil), r.Features...)
	out.Entities = append([]string(nil), r.Entities...)
	out.Records = make([]Record, len(r.Records))
	for i, rec := range r.Records {
		out.Records[i] = rec.clone()
	}
	return &out
}

func (r Record) clone() Record {
	values := make(map[string]string, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	counts := make(map[string]int, len(r.Counts))
	for k, v := range r.Counts {
		counts[k] = v
	}
	r.Values = values
	r.Counts = counts
	return r
}
