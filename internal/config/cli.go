// Package config holds the root command line definition.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/shaderembed/internal/cmd"
	"github.com/Alia5/shaderembed/internal/log"
)

// CLI is the root of the command line. Flags may also come from a JSON,
// YAML or TOML config file; flags and env vars win over file values.
type CLI struct {
	Config  string           `help:"Config file (.json, .yaml or .toml)" env:"SHADEREMBED_CONFIG"`
	Log     log.Config       `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print the version and exit"`

	Generate cmd.Generate        `cmd:"" default:"withargs" help:"Compile the shader tasks and write the embedded C++ sources"`
	Manifest cmd.ManifestCommand `cmd:"" help:"Shader task manifest helpers"`
}
