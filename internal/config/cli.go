// Package config declares the command line, which doubles as the schema of
// the optional JSON/YAML/TOML config file.
package config

import "github.com/Alia5/vtouch/internal/cmd"

type Log struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"VTOUCH_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" env:"VTOUCH_LOG_FILE"`
	TraceFile string `help:"Write every touch event to this file (trace level prints them to stdout)" env:"VTOUCH_LOG_TRACE_FILE"`
	FrameFile string `help:"Hex dump VIIPER stream frames to this file" env:"VTOUCH_LOG_FRAME_FILE"`
}

type CLI struct {
	ConfigFile string `name:"config" help:"Config file to load before the default locations" env:"VTOUCH_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Run    cmd.Run           `cmd:"" default:"withargs" help:"Open the touch overlay window"`
	Layout cmd.Layout        `cmd:"" help:"Resolve, store and print the control positions"`
	Config cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
