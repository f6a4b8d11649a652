package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
)

var featureColumns = []string{"PartID", "Tier1", "DieFamily", "LatestCompanyName", "Voltage", "Package", "Status"}

var featureMapping = models.RoleMapping{Group: "Tier1", Secondary: "DieFamily", Entity: "LatestCompanyName"}

func TestNonFeatureSet(t *testing.T) {
	set := NonFeatureSet(featureColumns, NonFeatureCandidates)
	assert.True(t, set["PartID"])
	assert.True(t, set["Status"])
	assert.False(t, set["Voltage"])
}

func TestFeatureColumns(t *testing.T) {
	got := FeatureColumns(featureColumns, featureMapping, NonFeatureCandidates)
	assert.Equal(t, []string{"Voltage", "Package"}, got)
}

func TestSelectFeatures(t *testing.T) {
	available := FeatureColumns(featureColumns, featureMapping, NonFeatureCandidates)

	got, err := SelectFeatures(featureColumns, available, nil, featureMapping)
	require.NoError(t, err)
	assert.Equal(t, available, got)

	got, err = SelectFeatures(featureColumns, available, []string{"package", "Tier1", "Package"}, featureMapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"Package"}, got, "role columns and duplicates are dropped")

	_, err = SelectFeatures(featureColumns, available, []string{"Missing"}, featureMapping)
	assert.ErrorIs(t, err, models.ErrUnknownColumn)
}
