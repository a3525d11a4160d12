package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/Alia5/shaderembed/internal/config"
	"github.com/Alia5/shaderembed/internal/configpaths"
	"github.com/Alia5/shaderembed/internal/log"
	"github.com/Alia5/shaderembed/internal/version"
)

func main() {
	ver, err := version.Get()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("shaderembed"),
		kong.Description("Compile shaders to SPIR-V and DXBC and embed them as C++ byte arrays"),
		kong.UsageOnError(),
		kong.Vars{"version": ver},
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, dumper, closeFiles, err := log.Setup(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.BindTo(dumper, (*log.BlobDumper)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// findUserConfig extracts --config before kong runs, since the config file
// has to be known to build the loaders.
func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("SHADEREMBED_CONFIG")
}
