package validator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/taxonomy"
)

const categoriesDoc = `{
  "categories": [
    {"id": "android", "name": "Android"},
    {"id": "crash", "name": "Crashes"},
    {"id": "network", "name": "Network"}
  ],
  "customTagPrefix": "custom:",
  "customTagsAllowed": true,
  "customTagRules": {"minLength": 2, "maxLength": 20, "pattern": "^[a-z0-9-]+$"}
}`

type catalog struct {
	root       string
	packsDir   string
	categories string
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()
	root := t.TempDir()
	c := &catalog{
		root:       root,
		packsDir:   filepath.Join(root, "packs"),
		categories: filepath.Join(root, "categories.json"),
	}
	require.NoError(t, os.WriteFile(c.categories, []byte(categoriesDoc), 0644))
	require.NoError(t, os.MkdirAll(c.packsDir, 0755))
	return c
}

func (c *catalog) addPack(t *testing.T, dir, content string) {
	t.Helper()
	packDir := filepath.Join(c.packsDir, dir)
	require.NoError(t, os.MkdirAll(packDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(packDir, "pack.json"), []byte(content), 0644))
}

func (c *catalog) run(t *testing.T) (*Report, string) {
	t.Helper()
	var buf bytes.Buffer
	report, err := Run(Options{PacksDir: c.packsDir, CategoriesFile: c.categories, Out: &buf})
	require.NoError(t, err)
	return report, buf.String()
}

func packDoc(id, tags string) string {
	return `{"id": "` + id + `", "name": "Pack ` + id + `", "version": "1.0.0", "author": "tester",
	  "tags": ` + tags + `, "filters": [{"id": "filter-1", "name": "E", "pattern": "E", "isRegex": false,
	  "caseSensitive": true, "color": "#FF0000", "enabled": true}]}`
}

func mustTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tx, err := taxonomy.Parse([]byte(categoriesDoc))
	require.NoError(t, err)
	return tx
}

func TestRun_AllValid(t *testing.T) {
	c := newCatalog(t)
	c.addPack(t, "android-crashes", packDoc("android-crashes", `["android", "crash"]`))
	c.addPack(t, "net", packDoc("net", `["network", "custom:okhttp"]`))

	report, out := c.run(t)

	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Count())
	assert.Contains(t, out, "✅ android-crashes: Valid")
	assert.Contains(t, out, "✅ net: Valid")
	assert.Contains(t, out, "All 2 pack(s) validated successfully")
}

func TestRun_IDMismatchFailsRun(t *testing.T) {
	c := newCatalog(t)
	c.addPack(t, "good", packDoc("good", `["android"]`))
	c.addPack(t, "renamed", packDoc("original-name", `["android"]`))

	report, out := c.run(t)

	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Failed())
	require.Len(t, report.Packs, 2)
	assert.True(t, report.Packs[0].OK(), "failure in one pack must not affect another")
	assert.True(t, report.Packs[1].HasCode(perrors.ErrIDMismatch))
	assert.Contains(t, out, `❌ renamed: Pack ID "original-name" does not match directory name`)
	assert.Contains(t, out, "1 of 2 pack(s) failed validation")
}

func TestRun_ContinuesPastMalformedPack(t *testing.T) {
	c := newCatalog(t)
	c.addPack(t, "aaa-broken", `{"id": "aaa-broken",`)
	c.addPack(t, "zzz-fine", packDoc("zzz-fine", `["crash"]`))

	report, out := c.run(t)

	require.Len(t, report.Packs, 2)
	assert.True(t, report.Packs[0].HasCode(perrors.ErrMalformedDocument))
	assert.True(t, report.Packs[1].OK())
	assert.Contains(t, out, "❌ aaa-broken: Invalid JSON - ")
	assert.Contains(t, out, "✅ zzz-fine: Valid")
}

func TestRun_UnreadablePackRecordedAndRunContinues(t *testing.T) {
	c := newCatalog(t)
	c.addPack(t, "good", packDoc("good", `["android"]`))
	require.NoError(t, os.MkdirAll(filepath.Join(c.packsDir, "weird", "pack.json"), 0755))

	report, out := c.run(t)

	require.Len(t, report.Packs, 2)
	assert.True(t, report.Packs[0].OK())
	assert.True(t, report.Packs[1].HasCode(perrors.ErrReadFailed))
	assert.Contains(t, out, "✅ good: Valid")
	assert.Contains(t, out, "❌ weird: Cannot read pack.json - ")
	assert.Contains(t, out, "1 of 2 pack(s) failed validation")
}

func TestRun_UnreadablePacksDirIsReported(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, os.RemoveAll(c.packsDir))
	require.NoError(t, os.WriteFile(c.packsDir, []byte("not a directory"), 0644))

	var buf bytes.Buffer
	report, err := Run(Options{PacksDir: c.packsDir, CategoriesFile: c.categories, Out: &buf})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, buf.String(), "❌ Cannot read packs directory")
}

func TestRun_SkipsDirsWithoutPackAndFiles(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, os.MkdirAll(filepath.Join(c.packsDir, "drafts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(c.packsDir, "README.md"), []byte("# packs"), 0644))

	report, out := c.run(t)

	assert.True(t, report.OK())
	assert.Equal(t, 0, report.Count())
	assert.Contains(t, out, "No packs found to validate")
}

func TestRun_MissingPacksDirSucceeds(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, os.RemoveAll(c.packsDir))

	report, out := c.run(t)

	assert.True(t, report.DirMissing)
	assert.True(t, report.OK())
	assert.Contains(t, out, "No packs directory found")
}

func TestRun_MissingTaxonomyIsFatal(t *testing.T) {
	c := newCatalog(t)
	c.addPack(t, "good", packDoc("good", `["android"]`))
	require.NoError(t, os.Remove(c.categories))

	var buf bytes.Buffer
	report, err := Run(Options{PacksDir: c.packsDir, CategoriesFile: c.categories, Out: &buf})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, perrors.HasCode(err, perrors.ErrMissingFile))
	assert.Contains(t, buf.String(), "categories.json not found")
	assert.NotContains(t, buf.String(), "good")
}

func TestCheckPack_SchemaViolationListsFields(t *testing.T) {
	doc := `{"id": "x", "name": "", "version": "v1", "author": "a", "tags": ["android"]}`

	res, err := CheckPack(mustTaxonomy(t), "x", []byte(doc))
	require.NoError(t, err)

	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]
	assert.Equal(t, perrors.ErrSchemaViolation, issue.Code)
	require.Len(t, issue.Fields, 2)
	assert.Equal(t, "/name", issue.Fields[0].Path)
	assert.Equal(t, "/version", issue.Fields[1].Path)
	assert.True(t, perrors.HasCode(issue.Err(), perrors.ErrSchemaViolation))
}

func TestCheckPack_SchemaFailureSkipsLaterChecks(t *testing.T) {
	doc := `{"id": "other", "name": "N", "version": "1.0.0", "tags": ["bogus"]}`

	res, err := CheckPack(mustTaxonomy(t), "x", []byte(doc))
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, perrors.ErrSchemaViolation, res.Issues[0].Code)
}

func TestCheckPack_IDAndTagChecksBothRun(t *testing.T) {
	res, err := CheckPack(mustTaxonomy(t), "dir", []byte(packDoc("other", `["bogus", "custom:X"]`)))
	require.NoError(t, err)

	assert.True(t, res.HasCode(perrors.ErrIDMismatch))
	assert.True(t, res.HasCode(perrors.ErrInvalidTag))
	assert.True(t, res.HasCode(perrors.ErrInvalidCustomTag))
	// custom:X violates both the length and the pattern rule.
	assert.Len(t, res.Issues, 4)
}

func TestCheckPack_CustomTagFixedByRemainderOnly(t *testing.T) {
	tx := mustTaxonomy(t)

	bad, err := CheckPack(tx, "p", []byte(packDoc("p", `["custom:has space"]`)))
	require.NoError(t, err)
	assert.True(t, bad.HasCode(perrors.ErrInvalidCustomTag))

	good, err := CheckPack(tx, "p", []byte(packDoc("p", `["custom:has-space"]`)))
	require.NoError(t, err)
	assert.True(t, good.OK())
}

func TestCheckPack_Warnings(t *testing.T) {
	tx := mustTaxonomy(t)

	t.Run("changelog ahead of version", func(t *testing.T) {
		doc := `{"id": "p", "name": "P", "version": "1.0.0", "author": "a", "tags": ["android"],
		  "logFormats": [{"name": "logcat"}],
		  "changelog": [{"version": "1.1.0", "date": "2025-01-01", "changes": ["x"]}]}`
		res, err := CheckPack(tx, "p", []byte(doc))
		require.NoError(t, err)
		assert.True(t, res.OK())
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "Changelog mentions 1.1.0")
	})

	t.Run("empty pack", func(t *testing.T) {
		doc := `{"id": "p", "name": "P", "version": "1.0.0", "author": "a", "tags": ["android"]}`
		res, err := CheckPack(tx, "p", []byte(doc))
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, []string{"Pack has no filters, exception rules or log formats"}, res.Warnings)
	})

	t.Run("unknown filter severity", func(t *testing.T) {
		doc := `{"id": "p", "name": "P", "version": "1.0.0", "author": "a", "tags": ["android"],
		  "filters": [
		    {"id": "f1", "name": "E", "pattern": "E", "isRegex": false, "caseSensitive": true, "color": "#FF0000", "enabled": true, "severity": "error"},
		    {"id": "f2", "name": "F", "pattern": "F", "isRegex": false, "caseSensitive": true, "color": "#FF0000", "enabled": true, "severity": "fatal"}
		  ]}`
		res, err := CheckPack(tx, "p", []byte(doc))
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, []string{`Filter "f2" has unknown severity "fatal"`}, res.Warnings)
	})

	t.Run("clean pack", func(t *testing.T) {
		res, err := CheckPack(tx, "p", []byte(packDoc("p", `["android"]`)))
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
	})
}
