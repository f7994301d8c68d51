package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Evronai/website-analyzer/internal/analyze"
	internaldb "github.com/Evronai/website-analyzer/internal/db"
	"github.com/Evronai/website-analyzer/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "website-analyzer",
		Usage: "Classify websites and score their AI-platform visibility",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Analyze one or more URLs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "urls",
						Usage:    "Comma-separated list of URLs to analyze",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "depth",
						Value: "basic",
						Usage: "Analysis depth: basic, advanced, deep",
					},
					&cli.StringFlag{
						Name:  "platforms",
						Usage: "Comma-separated AI platforms to score (default: Google SGE, ChatGPT, Bard, Claude)",
					},
					&cli.StringFlag{
						Name:    "api-key",
						EnvVars: []string{"DEEPSEEK_API_KEY"},
						Usage:   "DeepSeek API key; omit to use generated metrics",
					},
					&cli.BoolFlag{
						Name:  "probe",
						Usage: "Fetch each page for title/language/keyword metadata",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Number of concurrent analysis workers",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "analyzer-results",
						Usage: "Directory for reports, index and cache",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "Max age of cached DeepSeek responses",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Ignore cached DeepSeek responses",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "db",
				Usage: "Inspect the analysis history database",
				Subcommands: []*cli.Command{
					{
						Name:  "history",
						Usage: "List recent analyses",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 25,
								Usage: "Max rows to show (0 = all)",
							},
							&cli.StringFlag{
								Name:  "domain",
								Usage: "Filter by domain substring",
							},
						},
						Action: internaldb.HistoryAction,
					},
					{
						Name:      "show",
						Usage:     "Show one analysis as YAML",
						ArgsUsage: "<analysis_id>",
						Action:    internaldb.ShowAction,
					},
					{
						Name:   "init",
						Usage:  "Initialize the database schema",
						Action: internaldb.InitAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print the quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
