package aggregate

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/cellvalue"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

var mapping = models.RoleMapping{Group: "Tier", Secondary: "Die", Entity: "Company"}

func scenarioTable() *models.Table {
	return models.NewTable(
		[]string{"Tier", "Die", "Company", "Volt"},
		[]models.Row{
			{"Tier": "A", "Die": "X", "Company": "C1", "Volt": "5V"},
			{"Tier": "A", "Die": "X", "Company": "C1", "Volt": "5V||6V"},
			{"Tier": "A", "Die": "X", "Company": "C2", "Volt": ""},
		},
	)
}

func TestAggregateScenario(t *testing.T) {
	out, err := Aggregate(scenarioTable(), mapping, []string{"Volt"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"C1", "C2"}, out.Entities)
	want := []models.Record{{
		Group:     "A",
		Secondary: "X",
		Feature:   "Volt",
		Values:    map[string]string{"C1": "5V, 6V", "C2": "-"},
		Counts:    map[string]int{"C1": 2, "C2": 0},
	}}
	if diff := cmp.Diff(want, out.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateRoleCollision(t *testing.T) {
	tests := []models.RoleMapping{
		{Group: "Tier", Secondary: "Tier", Entity: "Company"},
		{Group: "Tier", Secondary: "Die", Entity: "Die"},
		{Group: "Company", Secondary: "Die", Entity: "Company"},
	}

	for _, m := range tests {
		out, err := Aggregate(scenarioTable(), m, []string{"Volt"}, Options{})
		assert.Nil(t, out, "no partial output for %+v", m)
		assert.ErrorIs(t, err, models.ErrRoleCollision, "mapping %+v", m)
	}
}

func TestAggregateUnknownColumns(t *testing.T) {
	_, err := Aggregate(scenarioTable(), models.RoleMapping{Group: "Tier", Secondary: "Die", Entity: "Maker"}, []string{"Volt"}, Options{})
	assert.ErrorIs(t, err, models.ErrUnknownColumn)

	_, err = Aggregate(scenarioTable(), mapping, []string{"Amps"}, Options{})
	assert.ErrorIs(t, err, models.ErrUnknownColumn)
}

func TestAggregateUniformShape(t *testing.T) {
	table := models.NewTable(
		[]string{"Tier", "Die", "Company", "Volt", "Pkg"},
		[]models.Row{
			{"Tier": "A", "Die": "X", "Company": "C1", "Volt": "5V", "Pkg": "QFN"},
			{"Tier": "A", "Die": "Y", "Company": "C2", "Volt": "3V3"},
			{"Tier": "B", "Die": "X", "Company": "C3", "Pkg": "BGA|QFN"},
			{"Tier": "B", "Die": "X", "Company": "  ", "Volt": "9V"},
			{"Tier": nil, "Die": "Z", "Company": "C1", "Volt": int64(12)},
		},
	)

	out, err := Aggregate(table, mapping, []string{"Volt", "Pkg"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"C1", "C2", "C3"}, out.Entities, "blank entities are not listed")

	for _, r := range out.Records {
		assert.ElementsMatch(t, out.Entities, keys(r.Values), "values keys of %s/%s/%s", r.Group, r.Secondary, r.Feature)
		assert.ElementsMatch(t, out.Entities, keys(r.Counts), "counts keys of %s/%s/%s", r.Group, r.Secondary, r.Feature)
	}

	// records are sorted by group, secondary, feature
	var order [][3]string
	for _, r := range out.Records {
		order = append(order, [3]string{r.Group, r.Secondary, r.Feature})
	}
	assert.Equal(t, [][3]string{
		{"", "Z", "Pkg"}, {"", "Z", "Volt"},
		{"A", "X", "Pkg"}, {"A", "X", "Volt"},
		{"A", "Y", "Pkg"}, {"A", "Y", "Volt"},
		{"B", "X", "Pkg"}, {"B", "X", "Volt"},
	}, order)

	bx := find(t, out.Records, "B", "X", "Volt")
	assert.Equal(t, map[string]string{"C1": "-", "C2": "-", "C3": "-"}, bx.Values, "blank entity values are not attributed")
	pkg := find(t, out.Records, "B", "X", "Pkg")
	assert.Equal(t, "BGA, QFN", pkg.Values["C3"])
	assert.Equal(t, 2, pkg.Counts["C3"])
	assert.Equal(t, "12", find(t, out.Records, "", "Z", "Volt").Values["C1"])
}

func TestAggregateRowOrderInvariant(t *testing.T) {
	rows := []models.Row{
		{"Tier": "A", "Die": "X", "Company": "C1", "Volt": "5V"},
		{"Tier": "A", "Die": "X", "Company": "C1", "Volt": "6V | 5V"},
		{"Tier": "A", "Die": "X", "Company": "C2", "Volt": "1V"},
		{"Tier": "B", "Die": "X", "Company": "C2", "Volt": "2V||3V"},
		{"Tier": "B", "Die": "X", "Company": "C3", "Volt": nil},
	}
	base, err := Aggregate(models.NewTable([]string{"Tier", "Die", "Company", "Volt"}, rows), mapping, []string{"Volt"}, Options{})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]models.Row(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Aggregate(models.NewTable([]string{"Tier", "Die", "Company", "Volt"}, shuffled), mapping, []string{"Volt"}, Options{})
		require.NoError(t, err)
		if diff := cmp.Diff(base, got); diff != "" {
			t.Fatalf("shuffle %d changed output (-want +got):\n%s", i, diff)
		}
	}
}

func TestAggregateCustomCodec(t *testing.T) {
	opts := Options{Codec: cellvalue.Codec{EmptyToken: "n/a", Separator: " / "}}
	out, err := Aggregate(scenarioTable(), mapping, []string{"Volt"}, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"C1": "5V / 6V", "C2": "n/a"}, out.Records[0].Values)
}

func TestAggregateDropsRoleFeatures(t *testing.T) {
	out, err := Aggregate(scenarioTable(), mapping, []string{"Company", "Volt", "Volt"}, Options{})
	require.NoError(t, err)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "Volt", out.Records[0].Feature)
}

func TestTruncate(t *testing.T) {
	recs := make([]models.Record, 5)

	got, cut := Truncate(recs, 3)
	assert.Len(t, got, 3)
	assert.True(t, cut)

	got, cut = Truncate(recs, 10)
	assert.Len(t, got, 5)
	assert.False(t, cut)

	_, cut = Truncate(recs, 0)
	assert.False(t, cut)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func find(t *testing.T, records []models.Record, group, secondary, feature string) models.Record {
	t.Helper()
	for _, r := range records {
		if r.Group == group && r.Secondary == secondary && r.Feature == feature {
			return r
		}
	}
	t.Fatalf("no record for %s/%s/%s", group, secondary, feature)
	return models.Record{}
}
