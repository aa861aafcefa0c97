package sequences

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by Resolve when no directory or builtin defines the name.
var ErrNotFound = errors.New("sequence not found")

// Parse decodes one definition. JSON is used when name ends in .json, YAML otherwise.
func Parse(name string, data []byte) (*Definition, error) {
	var def Definition
	if strings.EqualFold(filepath.Ext(name), ".json") {
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	def.Source = name
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return &def, nil
}

// LoadSequence reads one definition file.
func LoadSequence(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	return Parse(path, data)
}

// LoadSequencesFromDir reads every .yaml, .yml and .json file in dir, sorted
// by name. A missing directory yields no definitions.
func LoadSequencesFromDir(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sequence directory: %w", err)
	}

	var defs []*Definition
	for _, e := range entries {
		if e.IsDir() || !isDefinitionFile(e.Name()) {
			continue
		}
		def, err := LoadSequence(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// LoadBuiltinSequences returns the definitions shipped with the binary.
func LoadBuiltinSequences() ([]*Definition, error) {
	var defs []*Definition
	err := fs.WalkDir(builtinFS, "builtin", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		def, err := Parse(path, data)
		if err != nil {
			return err
		}
		def.Source = "builtin"
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load builtin sequences: %w", err)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// List returns every definition visible from dirs plus the builtins. When two
// sources define the same name the first directory wins and builtins come last.
func List(dirs []string) ([]*Definition, error) {
	seen := make(map[string]bool)
	var out []*Definition
	add := func(defs []*Definition) {
		for _, d := range defs {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			out = append(out, d)
		}
	}

	for _, dir := range dirs {
		defs, err := LoadSequencesFromDir(dir)
		if err != nil {
			return nil, err
		}
		add(defs)
	}
	builtins, err := LoadBuiltinSequences()
	if err != nil {
		return nil, err
	}
	add(builtins)
	return out, nil
}

// Resolve finds a definition by name or by file path. A path to an existing
// file is loaded directly, otherwise dirs are searched before the builtins.
func Resolve(nameOrPath string, dirs []string) (*Definition, error) {
	if isDefinitionFile(nameOrPath) {
		if _, err := os.Stat(nameOrPath); err == nil {
			return LoadSequence(nameOrPath)
		}
	}

	defs, err := List(dirs)
	if err != nil {
		return nil, err
	}
	for _, d := range defs {
		if d.Name == nameOrPath {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, nameOrPath)
}

func isDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
