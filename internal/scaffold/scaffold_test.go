package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/log-compass/community-packs/internal/pack"
	"github.com/log-compass/community-packs/internal/taxonomy"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewData(t *testing.T) {
	d := NewData("android-crashes", "", "chgocn", "", nil, now)
	assert.Equal(t, "Android Crashes", d.Name)
	assert.Equal(t, "Log filters for Android Crashes", d.Description)
	assert.Equal(t, InitialVersion, d.Version)
	assert.Equal(t, "2025-06-01", d.Date)
	assert.Equal(t, []string{}, d.Tags)

	d = NewData("x", "Custom Name", "me", "Mine", []string{"android"}, now)
	assert.Equal(t, "Custom Name", d.Name)
	assert.Equal(t, "Mine", d.Description)
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "android-crashes")
	data := NewData("android-crashes", `Android "Crash" <Logs>`, "chgocn", "", []string{"android", "custom:anr"}, now)

	result, err := Generate(data, outDir, nil)
	require.NoError(t, err)
	assert.Equal(t, outDir, result.OutputDir)
	assert.Equal(t, []string{"README.md", "pack.json"}, result.Files)
	assert.Empty(t, result.Warnings)

	p, err := pack.ParseFile(filepath.Join(outDir, pack.FileName))
	require.NoError(t, err)
	assert.Equal(t, "android-crashes", p.ID)
	assert.Equal(t, `Android "Crash" <Logs>`, p.Name)
	assert.Equal(t, []string{"android", "custom:anr"}, p.Tags)
	assert.Equal(t, 0, p.Filters.Count())
	require.Len(t, p.Changelog, 1)
	assert.Equal(t, "2025-06-01", p.Changelog[0].Date)

	readme, err := os.ReadFile(filepath.Join(outDir, pack.ReadmeName))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# Android \"Crash\" <Logs>")
	assert.Contains(t, string(readme), "**Tags:** android, custom:anr")
}

func TestGenerate_Warnings(t *testing.T) {
	tx, err := taxonomy.Parse([]byte(`{
	  "categories": [{"id": "android"}],
	  "customTagPrefix": "custom:",
	  "customTagsAllowed": true,
	  "customTagRules": {"minLength": 2, "maxLength": 20, "pattern": "^[a-z0-9-]+$"}
	}`))
	require.NoError(t, err)

	t.Run("no tags fails the schema", func(t *testing.T) {
		result, err := Generate(NewData("empty", "", "me", "", nil, now), filepath.Join(t.TempDir(), "empty"), tx)
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "/tags")
	})

	t.Run("unknown tag", func(t *testing.T) {
		result, err := Generate(NewData("net", "", "me", "", []string{"android", "networking"}, now), filepath.Join(t.TempDir(), "net"), tx)
		require.NoError(t, err)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], `Invalid tag "networking"`)
	})
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(NewData("Bad_ID", "", "me", "", []string{"android"}, now), t.TempDir(), nil)
	assert.ErrorContains(t, err, "invalid pack id")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.json"), []byte("{}"), 0644))
	_, err = Generate(NewData("taken", "", "me", "", []string{"android"}, now), dir, nil)
	assert.ErrorContains(t, err, "is not empty")
}
