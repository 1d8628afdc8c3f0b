package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/bitmap"
)

// newFlagSet returns a flag set for a subcommand whose usage line lists
// the positional arguments.
func newFlagSet(name, positional string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bmptool %s [FLAGS] %s\n", name, positional)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses args and checks the number of positional arguments.
func parseArgs(fs *flag.FlagSet, args []string, want int) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != want {
		fmt.Fprintf(fs.Output(), "expected %d argument(s), got %d\n", want, fs.NArg())
		fs.Usage()
		return errUsage
	}
	return nil
}

func runInfo(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("info", "FILE", stderr)
	asYAML := fs.Bool("yaml", false, "print metadata as YAML")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	path := fs.Arg(0)

	img, err := bitmap.Load(path)
	if err != nil {
		return err
	}
	md := img.Metadata()

	if *asYAML {
		out, err := yaml.Marshal(md)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		_, err = stdout.Write(out)
		return err
	}

	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(stdout, "%s: %d x %d, %d bytes per pixel, %d bytes of pixel data\n",
		path, md.Width, md.Height, md.BytesPerPixel, md.DataSize)
	return err
}

// sizeFlags registers the -width and -height flags shared by commands that
// produce an image of a chosen size.
func sizeFlags(fs *flag.FlagSet) (width, height *int) {
	width = fs.Int("width", 0, "output width in pixels")
	height = fs.Int("height", 0, "output height in pixels")
	return width, height
}

func runRandom(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("random", "OUT", stderr)
	width, height := sizeFlags(fs)
	seed := fs.Uint64("seed", 0, "generator seed (default: different on every run)")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}

	var opts []bitmap.Option
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts = append(opts, bitmap.WithSeed(*seed))
		}
	})

	img, err := bitmap.Random(*width, *height, opts...)
	if err != nil {
		return err
	}
	return save(img, fs.Arg(0), stdout)
}

func runScale(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("scale", "IN OUT", stderr)
	width, height := sizeFlags(fs)
	if err := parseArgs(fs, args, 2); err != nil {
		return err
	}

	src, err := bitmap.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	dst, err := src.Resample(*width, *height)
	if err != nil {
		return err
	}
	return save(dst, fs.Arg(1), stdout)
}

func runConvert(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("convert", "IN OUT", stderr)
	if err := parseArgs(fs, args, 2); err != nil {
		return err
	}

	img, err := bitmap.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	return save(img, fs.Arg(1), stdout)
}

// save writes img to path, as PNG when the extension is .png and as BMP
// otherwise.
func save(img *bitmap.Bitmap, path string, stdout io.Writer) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		if err := savePNG(img, path); err != nil {
			return err
		}
	} else if err := img.Save(path); err != nil {
		return err
	}

	successColor.Fprintf(stdout, "wrote %s (%dx%d)\n", path, img.Width(), img.Height())
	return nil
}

func savePNG(img *bitmap.Bitmap, path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}

	return f.Close()
}
