package main

import (
	"os"
	"strings"

	"github.com/Alia5/vtouch/internal/config"
	"github.com/Alia5/vtouch/internal/configpaths"
	"github.com/Alia5/vtouch/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vtouch"),
		kong.Description("On-screen touch gamepad"),
		kong.UsageOnError(),
		// flags and env override config file values
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logs, err := log.New(log.Options{
		Level:     cli.Log.Level,
		File:      cli.Log.File,
		TraceFile: cli.Log.TraceFile,
		FrameFile: cli.Log.FrameFile,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer logs.Close()

	ctx.Bind(logs.Logger)
	ctx.Bind(logs)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

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
	return os.Getenv("VTOUCH_CONFIG")
}
