package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rangoli/export"
	"rangoli/logging"
	"rangoli/pattern"
	"rangoli/render"
	"rangoli/terminal"
	"rangoli/validation"
)

// errNoInput is returned when stdin holds no size.
var errNoInput = errors.New("no size given on stdin")

// runPreview is swapped out by tests.
var runPreview = terminal.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rangoli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		size        = fs.Int("n", 0, "Rangoli size, 1-26 (default: read from stdin)")
		format      = fs.String("format", "text", "Output format: text, json")
		outputFile  = fs.String("o", "", "Output file (default: stdout)")
		colorMode   = fs.String("color", "never", "Color letters: auto, always, never")
		validate    = fs.Bool("validate", false, "Run validation on the output")
		interactive = fs.Bool("i", false, "Show the pattern in a full-screen terminal preview")
		verbose     = fs.Bool("v", false, "Log debug information to stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(stderr, "Prints an alphabet rangoli of size N. N is read from stdin unless -n is given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  echo 5 | %s              # Print a size 5 rangoli\n", fs.Name())
		fmt.Fprintf(stderr, "  %s -n 5 -format json     # Rows and lines as JSON\n", fs.Name())
		fmt.Fprintf(stderr, "  %s -n 26 -i              # Preview in the terminal\n", fs.Name())
		fmt.Fprintf(stderr, "  %s -n 8 -o rangoli.txt   # Write to a file\n", fs.Name())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := Config{
		Size:        *size,
		Format:      *format,
		Color:       *colorMode,
		Output:      *outputFile,
		Validate:    *validate,
		Interactive: *interactive,
		Verbose:     *verbose,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			cfg.SizeSet = true
		}
	})

	if err := cfg.Check(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(stderr, cfg.Verbose)
	defer logger.Sync()

	if err := execute(cfg, stdin, stdout, stderr, logger); err != nil {
		var vErr *validationFailure
		if errors.As(err, &vErr) {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(cfg Config, stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) error {
	size := cfg.Size
	if !cfg.SizeSet {
		var err error
		size, err = readSize(stdin)
		if err != nil {
			return err
		}
	}
	logger.Debug("size resolved", zap.Int("size", size), zap.Bool("from_flag", cfg.SizeSet))

	p, err := pattern.Build(size)
	if err != nil {
		return err
	}
	logger.Debug("pattern built", zap.Int("rows", len(p.Rows)), zap.Int("width", p.Width))

	if cfg.Interactive {
		return runPreview(p)
	}

	exportFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	colorize := exportFormat == export.FormatText && cfg.Output == "" &&
		render.DetectCapabilities().UseColor(render.ColorMode(cfg.Color))

	exporter, err := export.NewExporter(exportFormat, colorize)
	if err != nil {
		return fmt.Errorf("creating exporter: %w", err)
	}

	output, err := exporter.Export(p)
	if err != nil {
		return fmt.Errorf("exporting pattern: %w", err)
	}
	logger.Debug("pattern exported", zap.String("format", exporter.GetFormatName()), zap.Bool("color", colorize))

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing to file: %w", err)
		}
		fmt.Fprintf(stderr, "Successfully exported to %s\n", cfg.Output)
	} else if _, err := io.WriteString(stdout, output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if cfg.Validate {
		return validatePattern(p, stderr)
	}
	return nil
}

// readSize reads a decimal size from the first line of r.
func readSize(r io.Reader) (int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading stdin: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, errNoInput
	}

	size, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", line, err)
	}
	return size, nil
}

// validationFailure reports that -validate found problems. The problems
// themselves have already been printed.
type validationFailure struct {
	count int
}

func (e *validationFailure) Error() string {
	return fmt.Sprintf("%d validation errors", e.count)
}

func validatePattern(p *pattern.Pattern, stderr io.Writer) error {
	text, err := render.NewRenderer().Render(p)
	if err != nil {
		return err
	}

	errs := validation.NewPatternValidator().Validate(text)
	if len(errs) == 0 {
		return nil
	}

	fmt.Fprintf(stderr, "Validation errors:\n")
	for _, e := range errs {
		fmt.Fprintf(stderr, "  %s\n", e)
	}
	return &validationFailure{count: len(errs)}
}
