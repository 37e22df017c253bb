// Package file stores definition snapshots as JSON or YAML files in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/octabyte/bm-rabbitmq-api/db"
	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/utils"
	"github.com/octabyte/bm-rabbitmq-api/utils/logger"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type Store struct {
	dir    string
	format Format
}

var _ db.Store = (*Store)(nil)

// New returns a store writing <name>.json or <name>.yaml files under dir,
// creating dir if needed.
func New(dir string, format Format) (*Store, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("file: unsupported format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file: create %s: %w", dir, err)
	}
	return &Store{dir: dir, format: format}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+"."+string(s.format))
}

func (s *Store) Save(ctx context.Context, name string, defs responses.DefinitionSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := db.ValidateName(name); err != nil {
		return err
	}

	data, err := Encode(defs, s.format)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: save %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file: save %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("file: save %s: %w", name, err)
	}

	logger.LogDebug("snapshot written", zap.String("path", s.path(name)))
	return nil
}

func (s *Store) Load(ctx context.Context, name string) (responses.DefinitionSet, error) {
	if err := ctx.Err(); err != nil {
		return responses.DefinitionSet{}, err
	}
	if err := db.ValidateName(name); err != nil {
		return responses.DefinitionSet{}, err
	}
	return ReadFile(s.path(name))
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("file: list %s: %w", s.dir, err)
	}

	suffix := "." + string(s.format)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), suffix))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := db.ValidateName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", db.ErrSnapshotNotFound, name)
	}
	return err
}

// ReadFile decodes a definitions file in the format given by its extension.
func ReadFile(path string) (responses.DefinitionSet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return responses.DefinitionSet{}, fmt.Errorf("%w: %s", db.ErrSnapshotNotFound, path)
	}
	if err != nil {
		return responses.DefinitionSet{}, fmt.Errorf("file: read %s: %w", path, err)
	}
	return Decode(data, FormatOf(path))
}

// Encode renders defs as JSON, or as YAML with the same field names.
func Encode(defs responses.DefinitionSet, format Format) ([]byte, error) {
	data, err := utils.Marshal(defs)
	if err != nil {
		return nil, fmt.Errorf("file: encode definitions: %w", err)
	}
	if format == FormatJSON {
		return data, nil
	}

	var tree interface{}
	if err := utils.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("file: encode definitions: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("file: encode definitions as yaml: %w", err)
	}
	return out, nil
}

// Decode parses data in the given format. YAML is converted to JSON first so
// both formats go through the same tolerant decoders.
func Decode(data []byte, format Format) (responses.DefinitionSet, error) {
	if format == FormatYAML {
		var tree interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return responses.DefinitionSet{}, fmt.Errorf("file: parse yaml: %w", err)
		}
		converted, err := utils.Marshal(tree)
		if err != nil {
			return responses.DefinitionSet{}, fmt.Errorf("file: convert yaml: %w", err)
		}
		data = converted
	}
	return responses.Decode[responses.DefinitionSet](data)
}
