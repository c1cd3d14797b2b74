package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"joycore/internal/config"
	"joycore/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidates(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("joycore"),
		kong.Description(description()),
		kong.UsageOnError(),
		// Configuration files in priority order; flags and env override
		// values loaded from files.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("JOYCORE_CONFIG")
}

// configCandidates returns the config file search paths per format. An
// explicit user config is sorted into the matching format bucket.
func configCandidates(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(p string) {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, p)
		case ".toml":
			tomlPaths = append(tomlPaths, p)
		default:
			jsonPaths = append(jsonPaths, p)
		}
	}

	if userCfg != "" {
		add(userCfg)
	}
	for _, name := range []string{"joycore.json", "joycore.yaml", "joycore.yml", "joycore.toml"} {
		add(name)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range []string{"config.json", "config.yaml", "config.yml", "config.toml"} {
			add(filepath.Join(dir, "joycore", name))
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}
