package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/log-compass/community-packs/internal/pack"
	"github.com/log-compass/community-packs/internal/taxonomy"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const templatesDir = "templates"

// InitialVersion is the version given to a new pack.
const InitialVersion = "1.0.0"

var validID = regexp.MustCompile(`^[a-z0-9-]+$`)

// Data holds the template variables for a new pack.
type Data struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Tags        []string
	Date        string // YYYY-MM-DD of the initial changelog entry
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData returns Data for id with the remaining fields derived where empty:
// the name is the title-cased id, the description names the pack.
func NewData(id, name, author, description string, tags []string, now time.Time) *Data {
	if name == "" {
		name = cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
	}
	if description == "" {
		description = fmt.Sprintf("Log filters for %s", name)
	}
	if tags == nil {
		tags = []string{}
	}
	return &Data{
		ID:          id,
		Name:        name,
		Version:     InitialVersion,
		Author:      author,
		Description: description,
		Tags:        tags,
		Date:        now.UTC().Format("2006-01-02"),
	}
}

var funcs = template.FuncMap{
	"json": toJSON,
	"join": strings.Join,
}

// Generate renders every template into outputDir, which must be absent or
// empty. The generated pack document is then checked against the pack schema
// and, when tx is not nil, its tags against the taxonomy; problems are
// returned as warnings.
func Generate(data *Data, outputDir string, tx *taxonomy.Taxonomy) (*Result, error) {
	if !validID.MatchString(data.ID) {
		return nil, fmt.Errorf("invalid pack id %q: use lowercase letters, digits and hyphens", data.ID)
	}

	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(templateFS, path.Join(templatesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(funcs).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	result.Warnings = check(filepath.Join(outputDir, pack.FileName), tx)
	return result, nil
}

// check validates the generated pack document.
func check(packFile string, tx *taxonomy.Taxonomy) []string {
	var warnings []string

	valResult, err := pack.ValidateFile(packFile)
	if err != nil {
		return append(warnings, fmt.Sprintf("Could not validate pack: %v", err))
	}
	for _, issue := range valResult.Issues {
		warnings = append(warnings, issue.String())
	}

	if tx == nil {
		return warnings
	}
	h, err := pack.ParseHeaderFile(packFile)
	if err != nil {
		return append(warnings, fmt.Sprintf("Could not read pack: %v", err))
	}
	for _, v := range tx.CheckTags(h.Tags) {
		warnings = append(warnings, v.Reasons...)
	}
	return warnings
}

// toJSON encodes v for embedding in a JSON template.
func toJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
