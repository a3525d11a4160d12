// Package shader defines the shader compilation tasks, binary formats and
// error types shared by the compilers and the generator.
package shader

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Profile is the compiler-facing target profile token (stage + shader model).
type Profile string

const (
	ProfileVertex5 Profile = "vs_5_0"
	ProfilePixel5  Profile = "ps_5_0"
)

// ParseProfile returns the Profile for token or an error for unknown tokens.
func ParseProfile(token string) (Profile, error) {
	switch p := Profile(token); p {
	case ProfileVertex5, ProfilePixel5:
		return p, nil
	default:
		return "", fmt.Errorf("unknown target profile %q (supported: %s, %s)", token, ProfileVertex5, ProfilePixel5)
	}
}

// Format is a compiled binary format.
type Format int

const (
	// FormatSPV is the portable SPIR-V bytecode.
	FormatSPV Format = iota
	// FormatDXBC is the native Direct3D bytecode.
	FormatDXBC
)

// Formats lists the formats in pass order.
var Formats = []Format{FormatSPV, FormatDXBC}

// Tag returns the symbol tag of the format ("SPV" or "DXBC").
func (f Format) Tag() string {
	switch f {
	case FormatSPV:
		return "SPV"
	case FormatDXBC:
		return "DXBC"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension the compiler output is written with.
func (f Format) Ext() string {
	switch f {
	case FormatSPV:
		return ".spv"
	case FormatDXBC:
		return ".dxbc"
	default:
		return ".bin"
	}
}

func (f Format) String() string { return f.Tag() }

// Task is one shader entry point to compile.
type Task struct {
	Source  string  `json:"source" yaml:"source" toml:"source"`
	Entry   string  `json:"entry" yaml:"entry" toml:"entry"`
	Profile Profile `json:"profile" yaml:"profile" toml:"profile"`
}

// SymbolPrefix returns the generated name stem for a compiled entry point.
func SymbolPrefix(format Format, entry string) string {
	return format.Tag() + "_" + entry + "_"
}

// DefaultTasks returns the built-in task list, with source paths relative to
// the repository root.
func DefaultTasks() []Task {
	src := filepath.FromSlash("Shaders/Primitive.hlsl")
	return []Task{
		{Source: src, Entry: "psMain", Profile: ProfilePixel5},
		{Source: src, Entry: "psMainTextured", Profile: ProfilePixel5},
		{Source: src, Entry: "vsMain3D", Profile: ProfileVertex5},
		{Source: src, Entry: "vsMain2D", Profile: ProfileVertex5},
	}
}

// Validate checks that tasks can be compiled and embedded: the list is not
// empty, every profile is known, every entry is a C identifier and no entry
// appears twice.
func Validate(tasks []Task) error {
	if len(tasks) == 0 {
		return errors.New("no shader tasks")
	}
	seen := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if t.Source == "" {
			return fmt.Errorf("task %d (%s): empty source path", i, t.Entry)
		}
		if !isIdentifier(t.Entry) {
			return fmt.Errorf("task %d: entry point %q is not a valid identifier", i, t.Entry)
		}
		if _, err := ParseProfile(string(t.Profile)); err != nil {
			return fmt.Errorf("task %d (%s): %w", i, t.Entry, err)
		}
		if j, ok := seen[t.Entry]; ok {
			return fmt.Errorf("task %d: duplicate entry point %q (first defined by task %d)", i, t.Entry, j)
		}
		seen[t.Entry] = i
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
