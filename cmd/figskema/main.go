// Package main provides the figskema CLI for decoding and checking Figma
// file exports.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	figskema "github.com/reoring/figskema"
	"github.com/reoring/figskema/figma"
	"github.com/reoring/figskema/internal/slogctx"
	"github.com/reoring/figskema/vectorpath"
)

// errInvalidFiles indicates that validate found at least one file that does
// not decode.
var errInvalidFiles = errors.New("one or more files failed to decode")

// errNotVector indicates that bounds was asked about a node without geometry.
var errNotVector = errors.New("node has no vector geometry")

// app bundles dependencies so CLI action handlers become testable methods.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	stderrTTY bool
	opts      figskema.Options
}

func main() {
	a := &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stderrTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "figskema",
		Usage: "decode and inspect Figma file exports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML options file",
				Sources: cli.EnvVars("FIGSKEMA_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("FIGSKEMA_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format (auto, text, json)",
				Value:   "auto",
				Sources: cli.EnvVars("FIGSKEMA_LOG_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "jsonc",
				Usage:   "accept comments and trailing commas in input",
				Sources: cli.EnvVars("FIGSKEMA_JSONC"),
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "maximum nesting depth (0 = unlimited)",
				Sources: cli.EnvVars("FIGSKEMA_MAX_DEPTH"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "issue message language (en, ja)",
				Sources: cli.EnvVars("FIGSKEMA_LANG"),
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "print a summary of a file export",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output format (json, yaml)",
						Value:   "json",
					},
				},
				Action: a.inspectAction,
			},
			{
				Name:      "validate",
				Usage:     "decode one or more file exports and report issues",
				ArgsUsage: "<file>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "parallelism",
						Aliases: []string{"j"},
						Usage:   "max files decoded concurrently (0 = unlimited)",
						Value:   4,
					},
				},
				Action: a.validateAction,
			},
			{
				Name:      "bounds",
				Usage:     "print the bounding box and fill geometry bounds of a node",
				ArgsUsage: "<file> <node-id>",
				Action:    a.boundsAction,
			},
		},
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if err != nil {
				_, _ = fmt.Fprintf(a.stderr, "error: %v\n", err)
			}
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	format := cmd.String("log-format")
	if format == "auto" {
		// human-readable on a terminal, machine-parseable when piped
		format = "json"
		if a.stderrTTY {
			format = "text"
		}
	}
	switch format {
	case "text":
		handler = slog.NewTextHandler(a.stderr, hopts)
	case "json":
		handler = slog.NewJSONHandler(a.stderr, hopts)
	default:
		return ctx, fmt.Errorf("invalid log format %q: must be auto, text or json", format)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	opts := figskema.DefaultOptions()
	if path := cmd.String("config"); path != "" {
		loaded, err := figskema.LoadOptions(path)
		if err != nil {
			return ctx, err
		}
		opts = loaded
	}
	if cmd.IsSet("jsonc") {
		opts.JSONC = cmd.Bool("jsonc")
	}
	if cmd.IsSet("max-depth") {
		opts.MaxDepth = int(cmd.Int("max-depth"))
	}
	if cmd.IsSet("lang") {
		opts.Language = cmd.String("lang")
	}
	if err := opts.Validate(); err != nil {
		return ctx, fmt.Errorf("options: %w", err)
	}
	opts.ApplyLanguage()
	a.opts = opts
	return slogctx.ContextWithLogger(ctx, logger), nil
}

// fileSummary is the inspect output.
type fileSummary struct {
	Name          string         `json:"name" yaml:"name"`
	LastModified  string         `json:"lastModified" yaml:"lastModified"`
	Version       string         `json:"version" yaml:"version"`
	EditorType    string         `json:"editorType,omitempty" yaml:"editorType,omitempty"`
	SchemaVersion int            `json:"schemaVersion" yaml:"schemaVersion"`
	Digest        string         `json:"digest" yaml:"digest"`
	Pages         []string       `json:"pages" yaml:"pages"`
	Nodes         int            `json:"nodes" yaml:"nodes"`
	NodeTypes     map[string]int `json:"nodeTypes" yaml:"nodeTypes"`
	Components    int            `json:"components" yaml:"components"`
	ComponentSets int            `json:"componentSets" yaml:"componentSets"`
	Styles        int            `json:"styles" yaml:"styles"`
}

// summarize counts the nodes of f by type. The digest is the BLAKE3-256 of
// the decompressed export bytes.
func summarize(f *figma.File, data []byte) fileSummary {
	sum := blake3.Sum256(data)
	s := fileSummary{
		Name:          f.Name,
		LastModified:  f.LastModified,
		Version:       f.Version,
		EditorType:    string(f.EditorType),
		SchemaVersion: f.SchemaVersion,
		Digest:        hex.EncodeToString(sum[:]),
		Pages:         []string{},
		NodeTypes:     map[string]int{},
		Components:    len(f.Components),
		ComponentSets: len(f.ComponentSets),
		Styles:        len(f.Styles),
	}
	figma.Walk(f.Document, func(n figma.Node, depth int) bool {
		b := n.Base()
		s.Nodes++
		s.NodeTypes[string(b.Type)]++
		if depth == 1 && b.Type == figma.NodeCanvas {
			s.Pages = append(s.Pages, b.Name)
		}
		return true
	})
	return s
}

func (a *app) inspectAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("usage: figskema inspect <file>")
	}
	f, data, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	s := summarize(f, data)
	switch out := cmd.String("output"); out {
	case "json":
		return a.writeJSON(s)
	case "yaml":
		b, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = a.stdout.Write(b)
		return err
	default:
		return fmt.Errorf("invalid output format %q: must be json or yaml", out)
	}
}

func (a *app) validateAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("usage: figskema validate <file>...")
	}
	limit := int(cmd.Int("parallelism"))
	if limit < 0 {
		return fmt.Errorf("invalid value %d for flag --parallelism: must be >= 0", limit)
	}

	results := make([]error, len(paths))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			_, _, results[i] = a.load(ctx, path)
			// per-file failures are reported below, only cancellation stops the group
			if errors.Is(results[i], context.Canceled) {
				return results[i]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		if results[i] == nil {
			_, _ = fmt.Fprintf(a.stdout, "ok\t%s\n", path)
			continue
		}
		failed++
		iss, ok := figskema.AsIssues(results[i])
		if !ok {
			_, _ = fmt.Fprintf(a.stdout, "fail\t%s\t%v\n", path, results[i])
			continue
		}
		for _, is := range iss {
			_, _ = fmt.Fprintf(a.stdout, "fail\t%s\t%s\t%s\t%s\n", path, is.Path, is.Code, is.Message)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidFiles, failed, len(paths))
	}
	return nil
}

// nodeBounds is the bounds output.
type nodeBounds struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Type                string           `json:"type"`
	AbsoluteBoundingBox figma.Rectangle  `json:"absoluteBoundingBox"`
	FillBounds          *vectorpath.Rect `json:"fillBounds"`
	// AbsoluteFillBounds is FillBounds placed at the bounding box origin.
	AbsoluteFillBounds  *vectorpath.Rect `json:"absoluteFillBounds"`
}

func (a *app) boundsAction(ctx context.Context, cmd *cli.Command) error {
	path, id := cmd.Args().Get(0), cmd.Args().Get(1)
	if path == "" || id == "" {
		return errors.New("usage: figskema bounds <file> <node-id>")
	}
	f, _, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	n, ok := figma.NewIndex(f.Document).Node(id)
	if !ok {
		return fmt.Errorf("node %s not found in %s", id, path)
	}
	v, ok := n.(figma.Vectorish)
	if !ok {
		return fmt.Errorf("%w: %s is %s", errNotVector, id, n.Base().Type)
	}
	out := nodeBounds{
		ID:                  id,
		Name:                n.Base().Name,
		Type:                string(n.Base().Type),
		AbsoluteBoundingBox: v.Vector().AbsoluteBoundingBox,
	}
	r, ok, err := v.Vector().FillBounds()
	if err != nil {
		return fmt.Errorf("fill geometry of %s: %w", id, err)
	}
	if ok {
		box := out.AbsoluteBoundingBox
		abs := r.Translate(box.X, box.Y)
		out.FillBounds, out.AbsoluteFillBounds = &r, &abs
	}
	return a.writeJSON(out)
}

// load reads path, transparently decompressing .gz and .zst exports, and
// decodes it as a file response. The decompressed bytes are returned as well.
func (a *app) load(ctx context.Context, path string) (*figma.File, []byte, error) {
	ctx = slogctx.With(ctx, "file", path)
	data, err := readInput(path, a.opts.MaxBytes)
	if err != nil {
		return nil, nil, err
	}
	f, err := figma.DecodeFile(ctx, a.opts.BytesSource(data), a.opts)
	if err != nil {
		return nil, nil, err
	}
	return f, data, nil
}

func readInput(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer closeFn()
	return figskema.ReadAllLimited(r, maxBytes)
}

func decompress(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return zr, zr.Close, nil
	}
	return r, func() {}, nil
}

func (a *app) writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", b)
	return err
}
