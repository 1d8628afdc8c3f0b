// Command bmptool inspects, generates and converts BMP images.
//
// Usage:
//
//	bmptool [-v] info [-yaml] FILE
//	bmptool [-v] random -width W -height H [-seed S] OUT
//	bmptool [-v] scale -width W -height H IN OUT
//	bmptool [-v] convert IN OUT
//	bmptool -version
//
// convert writes PNG when OUT ends in .png and 24-bit BMP otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/gogpu/bitmap"
)

// errUsage reports bad arguments; the message has already been printed.
var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = map[string]command{
	"info":    {"print image metadata", runInfo},
	"random":  {"write a random image", runRandom},
	"scale":   {"resample an image to a new size", runScale},
	"convert": {"convert a BMP of any variant to PNG (OUT ends in .png) or 24-bit BMP", runConvert},
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bmptool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "bmptool %s\n", bitmap.Version)
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if *verbose {
		bitmap.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()
		return 2
	}

	err := cmd.run(fs.Args()[1:], stdout, stderr)
	switch {
	case errors.Is(err, errUsage):
		return 2
	case err != nil:
		errorColor.Fprintf(stderr, "bmptool %s: %v\n", name, err)
		return 1
	}
	return 0
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: bmptool [-v] COMMAND [ARGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
