package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/naccdata/fwprov/internal/project"
)

// LoadProjects reads a project file: a YAML stream with one document per
// project. Parse errors carry the line number reported by the decoder.
func LoadProjects(path string) ([]*project.Project, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var projects []*project.Project
	dec := yaml.NewDecoder(f)
	for {
		var doc project.Document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error in YAML file %s: %w", path, err)
		}
		if doc.Name == "" {
			return nil, fmt.Errorf("error in YAML file %s: document %d has no project name", path, len(projects)+1)
		}
		projects = append(projects, project.FromDocument(doc))
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no project documents in %s", path)
	}
	return projects, nil
}

// WriteProjectYAML writes one project document to a file, as produced by
// the init wizard.
func WriteProjectYAML(doc project.Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
