package aggregate

import (
	"fmt"
	"strings"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/resolve"
)

// Filter narrows a record list the way the exploration UI does.
type Filter struct {
	// Key restricts records to one comparison group when set.
	Key *models.GroupKey
	// Search keeps records whose feature name or any compared value contains
	// the text, case-insensitively.
	Search string
	// DiffersOnly keeps records whose values are not identical across the compared entities.
	DiffersOnly bool
	// Entities restricts the compared entities. Empty compares all entities.
	// Names are matched like column names, ignoring case, spaces, '-' and '_'.
	Entities []string
}

// Compared resolves f.Entities against the result's entity list.
// It returns every entity when f.Entities is empty.
func (f Filter) Compared(entities []string) ([]string, error) {
	if len(f.Entities) == 0 {
		return entities, nil
	}
	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		known[e] = true
	}
	compared := make([]string, 0, len(f.Entities))
	seen := make(map[string]bool, len(f.Entities))
	for _, name := range f.Entities {
		e, ok := name, known[name]
		if !ok {
			e, ok = resolve.Find(entities, []string{name})
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)", models.ErrUnknownEntity, name, strings.Join(entities, ", "))
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		compared = append(compared, e)
	}
	return compared, nil
}

// Apply returns the records passing the filter, preserving order.
// An entity name that is not in entities is an error.
func (f Filter) Apply(records []models.Record, entities []string) ([]models.Record, error) {
	compared, err := f.Compared(entities)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Record
	for _, r := range records {
		if f.Key != nil && r.Key() != *f.Key {
			continue
		}
		if f.DiffersOnly && !Differs(r, compared) {
			continue
		}
		if needle != "" && !matches(r, compared, needle) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Differs reports whether the record holds more than one distinct value
// across the given entities. An entity without data counts as its own value.
func Differs(r models.Record, entities []string) bool {
	var first string
	for i, e := range entities {
		v := r.Values[e]
		if i == 0 {
			first = v
			continue
		}
		if v != first {
			return true
		}
	}
	return false
}

func matches(r models.Record, entities []string, needle string) bool {
	if strings.Contains(strings.ToLower(r.Feature), needle) {
		return true
	}
	for _, e := range entities {
		if strings.Contains(strings.ToLower(r.Values[e]), needle) {
			return true
		}
	}
	return false
}
