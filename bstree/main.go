package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/antoniofull/bstree/src/bst"
	"github.com/antoniofull/bstree/src/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bstree",
	Short: "interactive binary search tree shell",
	Long:  "bstree keeps a single binary search tree of integers and lets you insert, remove and inspect values.",

	SilenceUsage: true,

	RunE: run,
}

func init() {
	var flags = rootCmd.Flags()
	flags.String("loglevel", "INFO", "The log level to use. (\"CRITICAL\", \"ERROR\", \"WARNING\", \"INFO\", \"DEBUG\", \"TEST\")")
	flags.String("log-format", string(logger.FormatterPrefixed), "The log format to use. (\"prefixed\", \"text\", \"json\")")
	flags.String("logfile", "", "The logfile to write to (none for stderr).")
	flags.Bool("no-color", false, "Disable colored output.")
	flags.String("seed", "", "Comma separated values to insert before starting, e.g. 10,7,15.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := loadEnvFiles(defaultEnvFiles...); err != nil {
		return errors.Wrap(err, "loading env files")
	}

	var cfg, err = loadConfig(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	var w io.Writer = os.Stderr
	if cfg.logfile != "" {
		var f *os.File
		if f, err = logger.NewLogFile(cfg.logfile); err != nil {
			return errors.Wrapf(err, "opening logfile %s", cfg.logfile)
		}
		defer f.Close()
		w = f
	}

	var log = logger.NewloggerWithFormatter(
		logger.LoglevelFromString(cfg.loglevel),
		w,
		logger.NewFormatter(logger.FormatterType(cfg.logFormat)),
		"bstree",
	)

	var tree = bst.New[int]().SetLogger(log)
	if cfg.seed != "" {
		values, err := parseValues(strings.Split(cfg.seed, ","))
		if err != nil {
			return errors.Wrap(err, "parsing seed")
		}
		for _, v := range values {
			tree.Insert(v)
		}
		log.Infof("seeded tree with %d values", tree.Len())
	}

	var shell = NewShell(tree, cmd.OutOrStdout())
	if cfg.noColor {
		shell.DisableColor()
	}
	return shell.Run(cmd.InOrStdin())
}
