// Command keyindex prints the slot to key table recovered from the
// document/sidecar pairs of a directory.
//
// Settings are read from an optional YAML file (-config) and overridden
// by explicitly set flags. The table is written to stdout as a single
// '|' separated line; logs go to stderr.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/bsm/keyindex"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func mainImpl(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keyindex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	version := fs.Bool("version", false, "Print version and exit")
	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	dir := fs.String("dir", ".", "Directory containing document/sidecar pairs")
	maxSlots := fs.Int("max-slots", keyindex.DefaultMaxSlots, "Number of table slots")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", fs.Args())
	}

	if *version {
		printVersion(stdout)
		return nil
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "max-slots":
			cfg.MaxSlots = *maxSlots
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := cfg.level()
	return run(cfg, stdout, newLogger(stderr, level))
}

// errorLine formats err for stderr, adding the command prefix unless the
// error already carries it.
func errorLine(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "keyindex: ") {
		return msg
	}
	return "keyindex: " + msg
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}))
}

// run decodes all pairs of cfg.Dir and writes the table to w. Nothing is
// written if any pair fails.
func run(cfg *config, w io.Writer, logger *slog.Logger) error {
	dec := keyindex.NewDecoder(cfg.decoderOptions())
	tbl := dec.NewTable()

	pairs, err := keyindex.DecodeDir(os.DirFS(cfg.Dir), dec, tbl, func(p keyindex.Pair, n int) {
		logger.Debug("decode", "document", p.Document, "sidecar", p.Sidecar, "records", n)
	})
	if err != nil {
		return err
	}
	logger.Info("decoded", "dir", cfg.Dir, "pairs", len(pairs), "slots", tbl.Len())

	var buf bytes.Buffer
	if _, err := tbl.WriteTo(&buf); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func printVersion(w io.Writer) {
	version, goVersion, revision, dirty := getBuildInfo()
	fmt.Fprintf(w, "keyindex %s\n", version)
	fmt.Fprintf(w, "  Go version: %s\n", goVersion)
	fmt.Fprintf(w, "  Revision:   %s\n", revision)
	if dirty {
		fmt.Fprintf(w, "  Modified:   true\n")
	}
}

func getBuildInfo() (version, goVersion, revision string, dirty bool) {
	version = "unknown"
	goVersion = "unknown"
	revision = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	version = info.Main.Version
	if version == "" || version == "(devel)" {
		version = "dev"
	}
	goVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return
}
