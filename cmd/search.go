package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
	"github.com/aviadkim/findoc-analyzer-sub003/eodhd"
)

type searchCmd struct {
	showErrors bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for securities using the EODHD API" }
func (*searchCmd) Usage() string {
	return `fda search <search term>

  Searches for securities via EOD Historical Data API and prints the
  matching listings with their identifiers.
  Requires the EODHD_API_TOKEN environment variable to be set.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.showErrors, "show-errors", false, "Display entries with invalid ISINs and print error messages")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return errorf("Error: %v", err)
	}
	client, err := eodhd.New(cfg.EODHDAPIToken)
	if err != nil {
		return errorf("Error: %v", err)
	}

	hits, err := client.Lookup(ctx, term)
	if err != nil {
		return errorf("Error searching securities: %v", err)
	}
	if len(hits) == 0 {
		fmt.Printf("No results found for %q.\n", term)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for %q:\n\n", len(hits), term)
	for _, hit := range hits {
		if err := findoc.ValidateISIN(hit.ISIN); err != nil {
			if c.showErrors {
				fmt.Printf("➡️   %s (%s.%s): dubious ISIN %q: %v\n", hit.Name, hit.Code, hit.Exchange, hit.ISIN, err)
			}
			continue
		}
		fmt.Printf("➡️   Name     : %s (%s.%s)\n", hit.Name, hit.Code, hit.Exchange)
		fmt.Printf("    Type      : %s, Country: %s, Currency: %s\n", hit.Type, hit.Country, hit.Currency)
		fmt.Printf("    ISIN      : %s\n\n", hit.ISIN)
	}
	return subcommands.ExitSuccess
}
