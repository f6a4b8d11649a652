package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

func sampleResult() *models.Result {
	return &models.Result{
		Meta: models.Meta{
			FileName:     "parts.xlsx",
			GroupCol:     "Tier1",
			SecondaryCol: "DieFamily",
			EntityCol:    "Company",
			FeatureCount: 1,
			RecordCount:  1,
			TotalRecords: 1,
		},
		Entities: []string{"C1", "C2"},
		Records: []models.Record{{
			Group:     "A",
			Secondary: "X",
			Feature:   "Volt",
			Values:    map[string]string{"C1": "<5V, 6V", "C2": "-"},
			Counts:    map[string]int{"C1": 2, "C2": 0},
		}},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResult(), false)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"<5V, 6V"`, "values are not HTML-escaped")
	assert.False(t, bytes.HasSuffix(data, []byte("\n")))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.ElementsMatch(t, []string{"meta", "companies", "records"}, keysOf(doc))
	assert.JSONEq(t, `["C1","C2"]`, string(doc["companies"]))
	assert.JSONEq(t, `[{"tier1":"A","dieFamily":"X","feature":"Volt",
		"values":{"C1":"<5V, 6V","C2":"-"},"counts":{"C1":2,"C2":0}}]`, string(doc["records"]))

	pretty, err := ToJSON(sampleResult(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"meta\"")
}

func TestWriteViewCSV(t *testing.T) {
	v := aggregate.View{
		RowHeader: "Feature",
		Columns:   []string{"C1", "C2"},
		Rows: []aggregate.ViewRow{
			{Key: "Volt", Cells: []string{"5V, 6V", "-"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteViewCSV(&buf, v))
	assert.Equal(t, "Feature,C1,C2\nVolt,\"5V, 6V\",-\n", buf.String())
}

func TestWriteRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsCSV(&buf, sampleResult()))

	want := strings.Join([]string{
		"Tier1,DieFamily,Feature,Company,Value,Count",
		"A,X,Volt,C1,\"<5V, 6V\",2",
		"A,X,Volt,C2,-,0",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderView(t *testing.T) {
	res := sampleResult()
	v := aggregate.FeatureMajor(res.Records, res.Entities, models.GroupKey{Group: "A", Secondary: "X"})

	out := RenderView(v)
	for _, s := range []string{"Feature", "C1", "C2", "Volt", "<5V, 6V"} {
		assert.Contains(t, out, s)
	}
}

func TestRenderKPIs(t *testing.T) {
	res := sampleResult()
	out := RenderKPIs(aggregate.Summarize(res.Entities, res.Records))

	assert.Contains(t, out, "Differing records")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "0.0%")
}

func TestRenderMappingAndSheets(t *testing.T) {
	m := models.RoleMapping{Group: "Tier1", Secondary: "DieFamily", Entity: "Company"}
	out := RenderMapping(m, m, []string{"Volt", "Package"})
	assert.Contains(t, out, "secondary")
	assert.Contains(t, out, "Package")

	wb := &models.WorkbookData{BookName: "parts.xlsx", Sheets: []models.SheetSummary{{Name: "Parts", DataRange: "A1:D9", Rows: 9, Columns: 4}}}
	assert.Contains(t, RenderSheets(wb), "A1:D9")
}

func keysOf(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
