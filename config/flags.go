package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command-line overrides.
type Flags struct {
	ConfigPath string
	Seed       uint64
	Graves     int
	LogLevel   string
}

// RegisterFlags defines the overrides on fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to a TOML config file")
	fs.Uint64Var(&f.Seed, "seed", 0, "seed for grave placement (0 = random)")
	fs.IntVar(&f.Graves, "graves", 0, "number of graves")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	return f
}

// Apply copies the flags that were set explicitly onto cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("seed") {
		cfg.Scene.Seed = f.Seed
	}
	if fs.Changed("graves") {
		cfg.Scene.GraveCount = f.Graves
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
}
