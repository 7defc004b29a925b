package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defaultEnvFiles = []string{".env", ".env.development"}

type config struct {
	// The log level to use.
	loglevel string
	// The log formatter, "prefixed", "text" or "json".
	logFormat string
	// The logfile to write to, stderr when empty.
	logfile string
	// Disable colored shell output.
	noColor bool
	// Comma separated values inserted before the shell starts.
	seed string
}

func fileExists(filepath string) bool {
	info, err := os.Stat(filepath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// Load the existing env files into the environment, variables which are already set win.
func loadEnvFiles(filepaths ...string) error {
	var found = lo.Filter(filepaths, func(filepath string, _ int) bool {
		return fileExists(filepath)
	})
	if len(found) == 0 {
		return nil
	}
	return godotenv.Load(found...)
}

// Flags take precedence over BSTREE_* environment variables.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	var v = viper.New()
	v.SetEnvPrefix("bstree")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return &config{
		loglevel:  v.GetString("loglevel"),
		logFormat: v.GetString("log-format"),
		logfile:   v.GetString("logfile"),
		noColor:   v.GetBool("no-color"),
		seed:      v.GetString("seed"),
	}, nil
}
