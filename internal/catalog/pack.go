package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Pack is one question pack file: a named bundle of categories.
type Pack struct {
	Name       string     `json:"name"`
	Version    int        `json:"version,omitempty"`
	Categories []Category `json:"categories"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func packSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(packSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://pack.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://pack.json")
	})
	return compiledSchema, compileErr
}

// ParsePack validates raw pack JSON against the pack schema and decodes
// it. Validation failures are returned verbatim so the import command
// can show the author what is wrong with the file.
func ParsePack(raw []byte) (*Pack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := packSchemaCompiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pack validation failed: %w", err)
	}

	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	// Stamp category IDs onto questions so a Question is self-describing
	// once it leaves the pack.
	for ci := range p.Categories {
		cat := &p.Categories[ci]
		for qi := range cat.Questions {
			if cat.Questions[qi].CategoryID == "" {
				cat.Questions[qi].CategoryID = cat.ID
			}
		}
	}
	return &p, nil
}

// LoadPackFile reads and validates a single pack file.
func LoadPackFile(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	p, err := ParsePack(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// LoadDir builds a catalog from every *.json pack in dir. A missing
// directory yields an empty catalog, not an error: a fresh install has
// imported nothing yet.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("read packs dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	c := &Catalog{}
	for _, name := range names {
		p, err := LoadPackFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		c.Merge(&Catalog{Categories: p.Categories})
	}
	return c, nil
}

// ImportPack validates src and copies it into the packs directory under
// its own base name. Returns the loaded pack for reporting.
func ImportPack(src, packsDir string) (*Pack, error) {
	p, err := LoadPackFile(src)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(packsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create packs dir: %w", err)
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	dst := filepath.Join(packsDir, filepath.Base(src))
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return nil, fmt.Errorf("write pack: %w", err)
	}
	return p, nil
}
