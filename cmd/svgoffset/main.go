// Command svgoffset offsets SVG path data by a signed distance.
//
//	svgoffset -d "M 0 0 L 10 0 L 10 10 Z" -distance 2 -join miter
//	echo "M 0 0 L 10 0 L 10 10 Z" | svgoffset -distance -1
//	svgoffset -svg drawing.svg -distance 1.5
//	svgoffset -validate -d "M 0 0 L 1 1"
//	svgoffset -script offsets.js
//	svgoffset -preview -d "M 0 0 L 10 0 L 10 10 Z"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/vasalvit/svgoffset"
	"github.com/vasalvit/svgoffset/internal/preview"
	"github.com/vasalvit/svgoffset/jsbind"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var previewRun = preview.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliFlags struct {
	d, svgFile, script, config string
	distance                   float64
	join, end                  string
	miter, arc                 float64
	anchorX, anchorY           float64
	all, validate, view        bool
	verbose                    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("svgoffset", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.d, "d", "", "path data; read from stdin when empty")
	fs.StringVar(&f.svgFile, "svg", "", "offset every shape of this SVG document")
	fs.StringVar(&f.script, "script", "", "run a JavaScript file with the offset functions registered")
	fs.StringVar(&f.config, "config", "", "JSON config file (default $SVGOFFSET_CONFIG_FILE)")
	fs.Float64Var(&f.distance, "distance", 0, "signed offset distance; positive inflates")
	fs.StringVar(&f.join, "join", "round", "join style: square, bevel, round or miter")
	fs.StringVar(&f.end, "end", "polygon", "end style: polygon, joined, butt, square or round")
	fs.Float64Var(&f.miter, "miter", svgoffset.DefaultMiterLimit, "miter limit")
	fs.Float64Var(&f.arc, "arc", svgoffset.DefaultArcTolerance, "arc tolerance")
	fs.Float64Var(&f.anchorX, "anchor-x", 0, "keep this fraction of the bounding box width in place")
	fs.Float64Var(&f.anchorY, "anchor-y", 0, "keep this fraction of the bounding box height in place")
	fs.BoolVar(&f.all, "all", false, "print every resulting ring instead of the first")
	fs.BoolVar(&f.validate, "validate", false, "print whether the path is valid and exit")
	fs.BoolVar(&f.view, "preview", false, "open the interactive terminal preview")
	fs.BoolVar(&f.verbose, "v", false, "log pipeline diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.config == "" {
		f.config = os.Getenv("SVGOFFSET_CONFIG_FILE")
	}
	cfg := defaults()
	if f.config != "" {
		loaded, err := loadConfig(f.config)
		if err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return exitUsage
		}
		cfg = merge(cfg, loaded)
	}
	cfg = applyFlags(cfg, f, set)

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	} else if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			fmt.Fprintf(stderr, "config: log_level: %v\n", err)
			return exitUsage
		}
	}
	svgoffset.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer svgoffset.SetLogger(nil)

	params, err := cfg.params()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	opts := cfg.options()

	switch {
	case f.script != "":
		return runScript(f.script, opts, stdout, stderr)
	case f.svgFile != "":
		return runDocument(f.svgFile, params, opts, stdout, stderr)
	}

	d := f.d
	if d == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "read stdin: %v\n", err)
			return exitFailure
		}
		d = strings.TrimSpace(string(b))
	}

	switch {
	case f.validate:
		ok := svgoffset.ValidatePath(d, opts...)
		fmt.Fprintln(stdout, ok)
		if !ok {
			return exitFailure
		}
		return exitOK
	case f.view:
		if err := previewRun(d, params, opts...); err != nil {
			fmt.Fprintf(stderr, "preview: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	res, err := svgoffset.Offset(d, params, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if f.all {
		fmt.Fprintln(stdout, res.String())
	} else {
		if len(res.Rings) > 1 {
			svgoffset.Logger().Warn("offset produced several rings, printing the first; use -all for every ring", "rings", len(res.Rings))
		}
		fmt.Fprintln(stdout, res.PathData())
	}
	return exitOK
}

func runDocument(path string, params svgoffset.Params, opts []svgoffset.Option, stdout, stderr io.Writer) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer file.Close()

	doc, err := svgoffset.ParseSvgFromReader(file, path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	code := exitOK
	for _, r := range doc.Offset(params, opts...) {
		if r.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", r.ID, r.Err)
			code = exitFailure
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", r.ID, r.Result.PathData())
	}
	return code
}

func runScript(path string, opts []svgoffset.Option, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	engine, err := jsbind.NewEngine(opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v, err := engine.Execute(ctx, string(src))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitFailure
	}
	if v != nil {
		fmt.Fprintln(stdout, v)
	}
	return exitOK
}
