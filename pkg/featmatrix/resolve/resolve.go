// Package resolve matches human-authored column name variants against actual table headers.
package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

// Normalize folds case and removes whitespace, hyphens and underscores.
// "Tier 1", "tier_1" and "TIER-1" all normalize to "tier1".
func Normalize(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return r
	}, folded)
}

// index maps normalized names to original column names.
// On collision the later column wins.
func index(columns []string) map[string]string {
	m := make(map[string]string, len(columns))
	for _, c := range columns {
		m[Normalize(c)] = c
	}
	return m
}

// Find returns the first column matching a candidate, trying candidates in priority order.
// It reports false when nothing matches, which callers treat as "use a fallback".
func Find(columns, candidates []string) (string, bool) {
	if len(columns) == 0 {
		return "", false
	}
	m := index(columns)
	for _, cand := range candidates {
		if col, ok := m[Normalize(cand)]; ok {
			return col, true
		}
	}
	return "", false
}

// FindOr returns the matched column or fallback.
func FindOr(columns, candidates []string, fallback string) string {
	if col, ok := Find(columns, candidates); ok {
		return col
	}
	return fallback
}

// Contains returns the first column whose normalized name contains the normalized substring.
func Contains(columns []string, substr string) (string, bool) {
	needle := Normalize(substr)
	if needle == "" {
		return "", false
	}
	for _, c := range columns {
		if strings.Contains(Normalize(c), needle) {
			return c, true
		}
	}
	return "", false
}

// AutoMapping picks a column per role. Roles without a match fall back to the
// first column, so the result may collide and must be validated.
func AutoMapping(columns []string, cands Candidates) models.RoleMapping {
	var first string
	if len(columns) > 0 {
		first = columns[0]
	}

	secondary, ok := Find(columns, cands.Secondary)
	if !ok {
		secondary, ok = Contains(columns, cands.SecondaryHint)
	}
	if !ok {
		secondary = first
	}

	return models.RoleMapping{
		Group:     FindOr(columns, cands.Group, first),
		Secondary: secondary,
		Entity:    FindOr(columns, cands.Entity, first),
	}
}

// Overrides holds explicit per-role column choices. Empty fields keep the auto pick.
type Overrides struct {
	Group     string
	Secondary string
	Entity    string
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// ApplyOverrides layers explicit choices over an automatic mapping.
// Override names are matched leniently through Normalize; an override that
// matches no column is a configuration error.
func ApplyOverrides(columns []string, auto models.RoleMapping, o Overrides) (models.RoleMapping, error) {
	m := auto
	pick := func(role, name string, dst *string) error {
		if name == "" {
			return nil
		}
		col, ok := Find(columns, []string{name})
		if !ok {
			return models.NewConfigError(models.ErrUnknownColumn, []string{role}, name)
		}
		*dst = col
		return nil
	}
	if err := pick(models.RoleGroup, o.Group, &m.Group); err != nil {
		return auto, err
	}
	if err := pick(models.RoleSecondary, o.Secondary, &m.Secondary); err != nil {
		return auto, err
	}
	if err := pick(models.RoleEntity, o.Entity, &m.Entity); err != nil {
		return auto, err
	}
	return m, nil
}
