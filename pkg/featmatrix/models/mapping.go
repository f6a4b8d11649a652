package models

// Role names used in errors and output metadata.
const (
	RoleGroup     = "group"
	RoleSecondary = "secondary"
	RoleEntity    = "entity"
)

// RoleMapping assigns table columns to the three key roles.
type RoleMapping struct {
	// Group is the grouping key column (e.g. Tier-1 supplier).
	Group string `json:"group" yaml:"group"`
	// Secondary is the secondary key column (e.g. DieFamily).
	Secondary string `json:"secondary" yaml:"secondary"`
	// Entity is the column whose distinct values become comparison columns (e.g. company).
	Entity string `json:"entity" yaml:"entity"`
}

// Columns returns the role columns in group, secondary, entity order.
func (m RoleMapping) Columns() []string {
	return []string{m.Group, m.Secondary, m.Entity}
}

// IsRole reports whether col is assigned to any role.
func (m RoleMapping) IsRole(col string) bool {
	return col == m.Group || col == m.Secondary || col == m.Entity
}

// Validate checks that every role is set and that the three columns are pairwise distinct.
// When t is non-nil, each role column must also exist in the table.
func (m RoleMapping) Validate(t *Table) error {
	roles := []struct {
		name string
		col  string
	}{
		{RoleGroup, m.Group},
		{RoleSecondary, m.Secondary},
		{RoleEntity, m.Entity},
	}

	for _, r := range roles {
		if r.col == "" {
			return NewConfigError(ErrUnknownColumn, []string{r.name})
		}
		if t != nil && !t.HasColumn(r.col) {
			return NewConfigError(ErrUnknownColumn, []string{r.name}, r.col)
		}
	}

	for i := 0; i < len(roles); i++ {
		for j := i + 1; j < len(roles); j++ {
			if roles[i].col == roles[j].col {
				return NewConfigError(ErrRoleCollision, []string{roles[i].name, roles[j].name}, roles[i].col)
			}
		}
	}
	return nil
}
