package shader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// manifest is the on-disk layout of a task list.
type manifest struct {
	Tasks []manifestTask `json:"tasks" yaml:"tasks" toml:"tasks"`
}

type manifestTask struct {
	Source  string `json:"source" yaml:"source" toml:"source"`
	Entry   string `json:"entry" yaml:"entry" toml:"entry"`
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
}

// NormalizeFormat maps a user supplied manifest format or file extension to
// "json", "yaml" or "toml". It returns "" for anything else.
func NormalizeFormat(f string) string {
	switch strings.ToLower(strings.TrimPrefix(f, ".")) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// LoadManifest reads a task list from path. The format is chosen by the file
// extension.
func LoadManifest(path string) ([]Task, error) {
	format := NormalizeFormat(filepath.Ext(path))
	if format == "" {
		return nil, fmt.Errorf("unsupported manifest extension %q (expected .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FilesystemError{Op: "read manifest", Path: path, Err: err}
	}
	tasks, err := ParseManifest(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return tasks, nil
}

// ParseManifest decodes a task list in the given format.
func ParseManifest(data []byte, format string) ([]Task, error) {
	var m manifest
	switch NormalizeFormat(format) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}

	tasks := make([]Task, 0, len(m.Tasks))
	for i, mt := range m.Tasks {
		p, err := ParseProfile(mt.Profile)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): %w", i, mt.Entry, err)
		}
		tasks = append(tasks, Task{Source: filepath.FromSlash(mt.Source), Entry: mt.Entry, Profile: p})
	}
	return tasks, nil
}

// MarshalManifest encodes tasks in the given format.
func MarshalManifest(tasks []Task, format string) ([]byte, error) {
	m := manifest{Tasks: make([]manifestTask, 0, len(tasks))}
	for _, t := range tasks {
		m.Tasks = append(m.Tasks, manifestTask{
			Source:  filepath.ToSlash(t.Source),
			Entry:   t.Entry,
			Profile: string(t.Profile),
		})
	}

	switch NormalizeFormat(format) {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(m)
	case "toml":
		return toml.Marshal(m)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
}
