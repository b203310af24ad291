package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
	"github.com/aviadkim/findoc-analyzer-sub003/agent"
	"github.com/aviadkim/findoc-analyzer-sub003/eodhd"
	"github.com/aviadkim/findoc-analyzer-sub003/renderer"
)

type extractCmd struct {
	format string
	llm    bool
	enrich bool
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract tables and entities from a document" }
func (*extractCmd) Usage() string {
	return `fda extract [-format json|report] [-llm] [-enrich] <file>

  Reads a document text file ("-" for stdin; markdown files are flattened
  to plain text first), extracts its tables and financial entities, and
  prints them as JSON or as a markdown report.

  -llm asks a Gemini model for the entities first, falling back to the
  rule-based extraction when it cannot answer. -enrich looks recognized
  companies up on EODHD (requires EODHD_API_TOKEN).
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or report")
	f.BoolVar(&c.llm, "llm", false, "Consult the language model before the rule-based passes")
	f.BoolVar(&c.enrich, "enrich", false, "Enrich recognized companies via the EODHD search API")
}

func (c *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a document file is required.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return errorf("Error: %v", err)
	}

	text, err := readDocument(f.Arg(0))
	if err != nil {
		return errorf("Error reading document: %v", err)
	}

	x := &findoc.Extractor{}
	if c.llm {
		recognizer, err := agent.New(ctx)
		if err != nil {
			// Degrade to the rule-based passes, as the engine would on a
			// failed call.
			log.Printf("language model unavailable: %v", err)
		} else {
			if cfg.Model != "" {
				recognizer.Model = cfg.Model
			}
			x.Recognizer = recognizer
		}
	}
	if c.enrich {
		client, err := eodhd.New(cfg.EODHDAPIToken)
		if err != nil {
			log.Printf("enrichment disabled: %v", err)
		} else {
			x.Enricher = &findoc.Enricher{Searcher: client, BatchPause: cfg.BatchPause}
		}
	}

	res := x.Extract(ctx, text)

	switch c.format {
	case "report":
		printMarkdown(renderer.Render(&res, renderer.Options{Currency: cfg.Currency}))
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return errorf("Error encoding result: %v", err)
		}
	default:
		return errorf("Error: unknown format %q (want json or report)", c.format)
	}
	return subcommands.ExitSuccess
}

// readDocument loads the document text. Markdown files are flattened so the
// detectors see plain text columns.
func readDocument(name string) (string, error) {
	var content []byte
	var err error
	if name == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown") {
		return findoc.Flatten(content), nil
	}
	return string(content), nil
}
