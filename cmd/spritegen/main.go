// Command spritegen packs animated GIF and WebP files into spritesheets
// from the command line.
//
// Usage:
//
//	spritegen gen [options] <input>    GIF/WebP → PNG spritesheet + JSON atlas
//	spritegen info [options] <input>   Display frame and layout geometry
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deepteams/spritesheet"
	"github.com/deepteams/webp/animation"
	"gopkg.in/yaml.v2"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "spritegen: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "spritegen: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  spritegen gen [options] <input>    Pack a GIF or animated WebP into a spritesheet
  spritegen info [options] <input>   Show frame and layout geometry without writing files

Use "-" as input to read from stdin.

Run "spritegen <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// layoutFlags holds the flags shared by gen and info.
type layoutFlags struct {
	mode    *string
	padding *int
	columns *int
	scale   *float64
	config  *string
}

func addLayoutFlags(fs *flag.FlagSet) layoutFlags {
	return layoutFlags{
		mode:    fs.String("mode", "", "layout mode: horizontal/vertical/grid (default horizontal)"),
		padding: fs.Int("padding", 0, "gap between cells in pixels"),
		columns: fs.Int("columns", 0, "grid columns (0 = ceil(sqrt(frames)))"),
		scale:   fs.Float64("scale", 0, "resample the sheet by this factor (0 = native)"),
		config:  fs.String("config", "", "YAML config file with mode/padding/columns/scale"),
	}
}

// options resolves the layout options: config file values first, then
// explicitly-set CLI flags on top.
func (lf layoutFlags) options(fs *flag.FlagSet) (spritesheet.Options, error) {
	var opts spritesheet.Options
	if *lf.config != "" {
		f, err := os.Open(*lf.config)
		if err != nil {
			return opts, err
		}
		defer f.Close()
		var cfg spritesheet.SheetConfig
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return opts, fmt.Errorf("parsing config %s: %w", *lf.config, err)
		}
		opts, err = cfg.Options()
		if err != nil {
			return opts, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			m, err := spritesheet.ParseMode(*lf.mode)
			if err != nil {
				flagErr = err
				return
			}
			opts.Mode = m
		case "padding":
			opts.Padding = *lf.padding
		case "columns":
			opts.Columns = *lf.columns
		case "scale":
			opts.Scale = *lf.scale
		}
	})
	return opts, flagErr
}

// loadFrames reads and decodes the input into canonical frames.
func loadFrames(inputPath string) ([]spritesheet.Frame, error) {
	in, err := openInput(inputPath)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	switch detectFormat(inputPath, data) {
	case "gif":
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding GIF: %w", err)
		}
		return spritesheet.FromGIF(g), nil
	case "webp":
		anim, err := animation.DecodeBytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding WebP: %w", err)
		}
		return spritesheet.FromWebP(anim)
	}
	return nil, fmt.Errorf("unsupported input format (want GIF or WebP)")
}

// detectFormat sniffs "gif" or "webp" from the file extension, falling
// back to the magic bytes. Returns "" when neither matches.
func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	}
	if len(data) >= 6 && string(data[:4]) == "GIF8" {
		return "gif"
	}
	if len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "webp"
	}
	return ""
}

// deriveBase returns the output base path (no extension) for an input.
func deriveBase(inputPath string) string {
	if inputPath == "-" {
		return "sheet"
	}
	return strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
}

// --- gen ---

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	lf := addLayoutFlags(fs)
	output := fs.String("o", "", "output base path (default: input name without extension)")
	drop := fs.Int("drop", -1, "remove the frame at this position before packing")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("gen: missing input file\nUsage: spritegen gen [options] <input>")
	}
	inputPath := fs.Arg(0)

	opts, err := lf.options(fs)
	if err != nil {
		return err
	}

	frames, err := loadFrames(inputPath)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if *drop >= 0 {
		frames = spritesheet.RemoveFrame(frames, *drop)
	}

	sheet, err := spritesheet.Generate(frames, &opts)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	defer sheet.Handle.Release()

	base := *output
	if base == "" {
		base = deriveBase(inputPath)
	}
	pngPath := base + ".png"
	atlasPath := base + ".json"

	if err := os.WriteFile(pngPath, sheet.PNG, 0o644); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	af, err := os.Create(atlasPath)
	if err != nil {
		os.Remove(pngPath)
		return fmt.Errorf("gen: %w", err)
	}
	if err := sheet.WriteAtlasJSON(af, filepath.Base(pngPath)); err != nil {
		af.Close()
		os.Remove(pngPath)
		os.Remove(atlasPath)
		return fmt.Errorf("gen: writing atlas: %w", err)
	}
	if err := af.Close(); err != nil {
		os.Remove(pngPath)
		os.Remove(atlasPath)
		return err
	}

	fmt.Fprintf(os.Stderr, "Packed %d frames → %s (%dx%d, %d bytes) + %s\n",
		len(sheet.Placements), pngPath, sheet.Width, sheet.Height, len(sheet.PNG), atlasPath)
	return nil
}

// --- info ---

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	lf := addLayoutFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: spritegen info [options] <input>")
	}
	inputPath := fs.Arg(0)

	opts, err := lf.options(fs)
	if err != nil {
		return err
	}

	frames, err := loadFrames(inputPath)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	name := inputPath
	if inputPath == "-" {
		name = "<stdin>"
	}
	fmt.Printf("File:   %s\n", name)
	fmt.Printf("Frames: %d\n", len(frames))

	var total time.Duration
	for _, f := range frames {
		fmt.Printf("  #%d  %dx%d at (%d,%d)  %v\n",
			f.Index, f.Width, f.Height, f.OffsetLeft, f.OffsetTop, f.Duration)
		total += f.Duration
	}
	fmt.Printf("Total duration: %v\n", total)

	sheet, err := spritesheet.Generate(frames, &opts)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	defer sheet.Handle.Release()
	fmt.Printf("Sheet:  %dx%d (%s, padding %d)\n", sheet.Width, sheet.Height, opts.Mode, opts.Padding)
	return nil
}
