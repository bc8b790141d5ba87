// Package agentsource loads the static agent registry from a YAML or JSON file.
package agentsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/proverbs-one/npslocator/internal/domain"
	"github.com/proverbs-one/npslocator/internal/domain/agent"
)

// File reads agents from a registry file on every Load.
type File struct {
	path string
}

// New creates a file-backed registry source.
func New(path string) *File {
	return &File{path: filepath.Clean(path)}
}

// Path returns the registry file path.
func (f *File) Path() string { return f.path }

// Load reads and validates the registry file.
// Malformed content is a ValidationError; unreadable files are wrapped I/O errors.
func (f *File) Load(ctx context.Context) ([]agent.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", f.path, err)
	}
	agents, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", f.path, err)
	}
	return agents, nil
}

// Check reports whether the registry file is readable.
func (f *File) Check(_ context.Context) error {
	info, err := os.Stat(f.path)
	if err != nil {
		return fmt.Errorf("stat registry %s: %w", f.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("registry %s is a directory", f.path)
	}
	return nil
}

// Parse decodes registry content and builds validated agents in file order.
// Unknown fields are rejected so typos like "lon" do not pass as missing data.
func Parse(data []byte) ([]agent.Agent, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []agent.Agent{}, nil
		}
		return nil, domain.NewValidationError("", "parse registry: "+err.Error())
	}

	agents := make([]agent.Agent, 0, len(doc.Agents))
	for i, rec := range doc.Agents {
		if rec.Lat == nil || rec.Lng == nil {
			return nil, domain.NewValidationError(
				fmt.Sprintf("agents[%d]", i), "both lat and lng are required")
		}
		a, err := agent.New(rec.ID, rec.Name, *rec.Lat, *rec.Lng)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return nil, domain.NewValidationError(fmt.Sprintf("agents[%d].%s", i, ve.Field), ve.Reason)
			}
			return nil, fmt.Errorf("agents[%d]: %w", i, err)
		}
		agents = append(agents, a)
	}
	return agents, nil
}
