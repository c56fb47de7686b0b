package pack

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePack(filters FilterSet) *Pack {
	return &Pack{
		Header: Header{
			ID:      "sample",
			Name:    "Sample",
			Version: "1.0.0",
			Author:  "me",
			Tags:    []string{"android"},
		},
		Filters:        filters,
		ExceptionRules: []json.RawMessage{},
		LogFormats:     []json.RawMessage{},
	}
}

func decodeMap(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestMarshal_FlatOmitsGroups(t *testing.T) {
	p := samplePack(NewFlatFilters([]Filter{{ID: "filter-1", Name: "x", Pattern: "a<b", Color: "#000000", Enabled: true}}))

	data, err := Marshal(p)
	require.NoError(t, err)

	m := decodeMap(t, data)
	assert.Contains(t, m, "filters")
	assert.NotContains(t, m, "filterGroups")
	assert.Equal(t, []interface{}{}, m["exceptionRules"])
	assert.Equal(t, []interface{}{}, m["logFormats"])
	assert.NotContains(t, m, "description")
	assert.Contains(t, string(data), `"pattern": "a<b"`)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"id\": \"sample\""))
}

func TestMarshal_GroupedOmitsFlat(t *testing.T) {
	group := FilterGroup{ID: "group-1", Name: "Crash Logs", Filters: []Filter{{ID: "filter-1"}}}
	p := samplePack(NewGroupedFilters(group))

	data, err := Marshal(p)
	require.NoError(t, err)

	m := decodeMap(t, data)
	assert.NotContains(t, m, "filters")
	groups, ok := m["filterGroups"].([]interface{})
	require.True(t, ok)
	require.Len(t, groups, 1)
	assert.Equal(t, "Crash Logs", groups[0].(map[string]interface{})["name"])
}

func TestMarshal_NoFiltersAndNilCollections(t *testing.T) {
	p := samplePack(FilterSet{})
	p.ExceptionRules = nil
	p.LogFormats = nil

	data, err := Marshal(p)
	require.NoError(t, err)

	m := decodeMap(t, data)
	for _, key := range []string{"filters", "filterGroups", "exceptionRules", "logFormats", "changelog"} {
		assert.NotContains(t, m, key)
	}
	assert.True(t, p.IsEmpty())
}

func TestMarshal_EmptyFlatListKept(t *testing.T) {
	p := samplePack(NewFlatFilters(nil))

	data, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, decodeMap(t, data)["filters"])
}

func TestRoundTripPreservesUnion(t *testing.T) {
	orig, err := ParseFile(testPath("valid-grouped.json"))
	require.NoError(t, err)

	data, err := Marshal(orig)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, GroupedFilters, back.Filters.Kind())
	assert.Equal(t, orig.Filters.All(), back.Filters.All())
}

func TestFilterKindString(t *testing.T) {
	assert.Equal(t, "filters", FlatFilters.String())
	assert.Equal(t, "filterGroups", GroupedFilters.String())
	assert.Equal(t, "none", NoFilters.String())
}

func TestSeverityValid(t *testing.T) {
	for _, s := range ValidSeverities {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Severity("fatal").Valid())
	assert.False(t, Severity("").Valid())
}
