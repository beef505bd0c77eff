package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/tdewolff/pathdata"
	"github.com/tdewolff/pathdata/internal/config"
	"github.com/tdewolff/pathdata/internal/log"
	"github.com/tdewolff/pathdata/svgdoc"
)

type Write struct {
	Normalize bool   `short:"n" desc:"Write absolute M, L, C and Z commands only"`
	Precision int    `short:"p" desc:"Significant digits, 0 uses the preferences"`
	Decimals  int    `default:"-1" desc:"Fixed number of decimals, -1 uses the preferences"`
	Absolute  bool   `desc:"Never write relative coordinates"`
	Repeat    bool   `desc:"Repeat the command letter for every parameter group"`
	Minify    bool   `desc:"Omit optional separators"`
	SVG       bool   `desc:"Input is an SVG document, write the data of every path element"`
	Config    string `short:"c" desc:"Preferences file"`
	LogLevel  string `desc:"Log level: debug, info, warn or error"`
	Input     string `index:"0" desc:"Input file, - or empty for stdin"`
}

type Check struct {
	SVG    bool   `desc:"Input is an SVG document"`
	Config string `short:"c" desc:"Preferences file"`
	Input  string `index:"0" desc:"Input file, - or empty for stdin"`
}

func main() {
	root := argp.NewCmd(&Write{}, "SVG path data normalizer and compactor")
	root.AddCmd(&Check{}, "check", "Report malformed path data")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Write) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.LogLevel != "" {
		cfg.Logging.Level = cmd.LogLevel
	}
	initLog(cfg)
	defer log.Close()

	b, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	return cmd.write(os.Stdout, b, cfg)
}

// options returns the writer options of the preferences overridden by the flags.
func (cmd *Write) options(cfg config.Config) pathdata.Options {
	o := cfg.SVGOutput.Options()
	if cmd.Normalize {
		o = pathdata.NormalizeOptions
	}
	if 0 < cmd.Precision {
		o.Precision = cmd.Precision
		o.Decimals = -1
	}
	if 0 <= cmd.Decimals {
		o.Decimals = cmd.Decimals
	}
	if cmd.Absolute {
		o.AllowRelative = false
	}
	if cmd.Repeat {
		o.ForceRepeatCommands = true
	}
	if cmd.Minify {
		o.Minify = true
	}
	return o
}

func (cmd *Write) write(w io.Writer, b []byte, cfg config.Config) error {
	logger := log.WithComponent("write")
	o := cmd.options(cfg)
	if !cmd.SVG {
		pv, err := pathdata.ParseStrict(strings.TrimSpace(string(b)))
		if err != nil {
			logger.Warn("path data read partially", "err", err)
		}
		logger.Debug("parsed", "subpaths", len(pv), "segments", pv.Segments())
		_, err = fmt.Fprintln(w, pathdata.WriteOptions(pv, o))
		return err
	}

	elems, err := svgdoc.Paths(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	for _, elem := range elems {
		if elem.Err != nil {
			logger.Warn("path data read partially", "id", elem.ID, "err", elem.Err)
		}
		id := elem.ID
		if id == "" {
			id = "-"
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", id, pathdata.WriteOptions(elem.Path, o)); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *Check) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	initLog(cfg)
	defer log.Close()

	b, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	return cmd.check(b)
}

// check returns the first malformed path data, if any.
func (cmd *Check) check(b []byte) error {
	if !cmd.SVG {
		_, err := pathdata.ParseStrict(strings.TrimSpace(string(b)))
		return err
	}

	elems, err := svgdoc.Paths(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	bad := 0
	for _, elem := range elems {
		if elem.Err != nil {
			log.L().Error("malformed path data", "id", elem.ID, "err", elem.Err)
			bad++
		}
	}
	if bad != 0 {
		return fmt.Errorf("%d of %d paths are malformed", bad, len(elems))
	}
	log.L().Info("all paths are well-formed", "paths", len(elems))
	return nil
}

////////////////////////////////////////////////////////////////

func loadConfig(filename string) (config.Config, error) {
	if filename == "" {
		var err error
		if filename, err = config.Path(); err != nil {
			return config.Defaults(), nil
		}
	}
	return config.Load(filename)
}

func initLog(cfg config.Config) {
	log.Init(log.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
