package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/1broseidon/t2play/internal/config"
	"github.com/1broseidon/t2play/internal/panel"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type options struct {
	configPath string
	overrides  config.Overrides
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("t2play", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath(), "path to the YAML config file")
	output := fs.StringP("output", "o", "", "place the bar on the output with this name")
	items := fs.StringP("items", "i", "", "panel item codes: T taskbar, C clock, S spacer")
	timeout := fs.DurationP("timeout", "t", 0, "exit after this long (0 disables)")
	layer := fs.String("layer", "", "layer: background, bottom, top or overlay")
	anchor := fs.String("anchor", "", "screen edge: top or bottom")
	height := fs.Int("height", 0, "bar height in logical pixels")
	logLevel := fs.String("log-level", "", "log level: debug, info, warning or error")
	help := fs.BoolP("help", "h", false, "show help")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *help {
		fs.Usage()
		return nil, pflag.ErrHelp
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	o := &opts.overrides
	if fs.Changed("output") {
		o.Output = output
	}
	if fs.Changed("items") {
		o.PanelItems = items
	}
	if fs.Changed("timeout") {
		o.CloseTimeout = timeout
	}
	if fs.Changed("layer") {
		l := config.Layer(*layer)
		o.Layer = &l
	}
	if fs.Changed("anchor") {
		a := config.Anchor(*anchor)
		o.Anchor = &a
	}
	if fs.Changed("height") {
		o.Height = height
	}
	if fs.Changed("log-level") {
		o.LogLevel = logLevel
	}
	return opts, nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: t2play [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Status bar with a taskbar and clock for wlroots compositors.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}

// setupLogging writes human-readable logs on a terminal and JSON otherwise.
func setupLogging(stderr io.Writer, level string) {
	logrus.SetOutput(stderr)
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// loadConfig reads the file with flag overrides on top. A broken file is
// reported and skipped; a broken override is a usage error.
func loadConfig(opts *options) (*config.Config, error) {
	res, err := config.LoadFromPath(opts.configPath, opts.overrides)
	if err == nil {
		if len(res.Unknown) > 0 {
			logrus.WithField("keys", res.Unknown).Warn("unknown config keys ignored")
		}
		return res.Config, nil
	}
	logrus.WithError(err).WithField("path", opts.configPath).Warn("config unusable, using defaults")

	res, err = config.LoadFromPath("", opts.overrides)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	setupLogging(stderr, "info")
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	setupLogging(stderr, cfg.LogLevel)
	log := logrus.StandardLogger()
	log.WithFields(logrus.Fields{
		"items":  cfg.PanelItems,
		"layer":  cfg.Layer,
		"anchor": cfg.Anchor,
		"height": cfg.Height,
	}).Debug("configuration loaded")

	p, err := panel.New(cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to start panel")
		return exitError
	}

	reason, runErr := p.Run()
	if err := p.Close(); err != nil {
		log.WithError(err).Warn("teardown incomplete")
	}
	if runErr != nil {
		log.WithError(runErr).Error("panel stopped")
		return exitError
	}
	log.WithField("reason", reason).Info("panel exited")
	return exitOK
}
