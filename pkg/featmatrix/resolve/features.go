package resolve

import (
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// NonFeatureSet returns the columns whose normalized name appears in the non-feature list.
func NonFeatureSet(columns, nonFeature []string) map[string]bool {
	names := make(map[string]bool, len(nonFeature))
	for _, c := range nonFeature {
		names[Normalize(c)] = true
	}
	out := make(map[string]bool)
	for _, c := range columns {
		if names[Normalize(c)] {
			out[c] = true
		}
	}
	return out
}

// FeatureColumns returns, in table order, the columns that are neither role
// columns nor known non-feature columns.
func FeatureColumns(columns []string, m models.RoleMapping, nonFeature []string) []string {
	skip := NonFeatureSet(columns, nonFeature)
	var out []string
	for _, c := range columns {
		if skip[c] || m.IsRole(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SelectFeatures narrows available features to an explicit selection.
// An empty selection keeps everything available. Requested names are matched
// leniently; role columns are always dropped. Unknown names are a configuration error.
func SelectFeatures(columns, available, requested []string, m models.RoleMapping) ([]string, error) {
	if len(requested) == 0 {
		return dropRoles(available, m), nil
	}

	seen := make(map[string]bool, len(requested))
	var out []string
	for _, name := range requested {
		col, ok := Find(columns, []string{name})
		if !ok {
			return nil, models.NewConfigError(models.ErrUnknownColumn, []string{"feature"}, name)
		}
		if m.IsRole(col) || seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, col)
	}
	return out, nil
}

func dropRoles(cols []string, m models.RoleMapping) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if !m.IsRole(c) {
			out = append(out, c)
		}
	}
	return out
}
