// Command tinybrowser drives the rendering pipeline (internal/page)
// against a single HTML file or stdin and prints the resulting
// display-item list, the way a real host's display sink would consume
// it (spec.md §6: "Display sink: consumes a DisplayItem sequence and
// renders it. The core has no knowledge of the sink.").
//
// Grounded on the teacher's cmd/justhtml and cmd/justgohtml: a small
// flag.FlagSet, "-" meaning stdin, and a run(args, stdin, stdout,
// stderr) function kept separate from main() for testability.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Christian/JustGoHTML/internal/page"
	"github.com/MeKo-Christian/JustGoHTML/internal/paint"
	"github.com/MeKo-Christian/JustGoHTML/internal/style"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tinybrowser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	url := fs.String("url", "about:blank", "page URL, used by location.href/location.hash in scripts")
	showVersion := fs.Bool("version", false, "show version")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] <file>\n\n", "tinybrowser")
		fmt.Fprintf(stderr, "Render an HTML document to a display-item list.\n\n")
		fmt.Fprintf(stderr, "Arguments:\n  file    HTML file path or '-' for stdin\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	inputPath := fs.Arg(0)
	if inputPath == "" {
		fs.Usage()
		return fmt.Errorf("missing file argument")
	}

	body, err := readInput(inputPath, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p := page.New()
	items, err := p.ReceiveResponse(body, *url)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	printItems(stdout, items)
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func printItems(w io.Writer, items []paint.Item) {
	for _, item := range items {
		switch item.Kind {
		case paint.RectItem:
			fmt.Fprintf(w, "Rect  bg=%s at (%.0f,%.0f) size %.0fx%.0f\n",
				item.Style.BackgroundColorOr(style.White),
				item.Point.X, item.Point.Y, item.Size.Width, item.Size.Height)
		case paint.TextItem:
			fmt.Fprintf(w, "Text  %q at (%.0f,%.0f)\n", item.Text, item.Point.X, item.Point.Y)
		case paint.LinkItem:
			fmt.Fprintf(w, "Link  %q -> %s at (%.0f,%.0f)\n", item.Text, item.Destination, item.Point.X, item.Point.Y)
		case paint.ImgItem:
			fmt.Fprintf(w, "Img   %s at (%.0f,%.0f)\n", item.Src, item.Point.X, item.Point.Y)
		}
	}
}
