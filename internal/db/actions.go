package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	dbpkg "github.com/Evronai/website-analyzer/pkg/db"
)

func HistoryAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var analyses []dbpkg.AnalysisRow
	if domain := c.String("domain"); domain != "" {
		analyses, err = database.ListAnalysesByDomain(domain)
	} else {
		analyses, err = database.ListAnalyses(c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(analyses) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-30s %-22s %-10s %-9s %-5s %-5s\n",
		"ID", "Created", "Domain", "Category", "Depth", "Source", "Vis", "Ent")
	fmt.Println(strings.Repeat("-", 115))

	for _, a := range analyses {
		fmt.Printf("%-6d %-20s %-30s %-22s %-10s %-9s %-5d %-5d\n",
			a.AnalysisID,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(a.Domain, 30),
			truncate(a.Category, 22),
			a.Depth,
			a.Source,
			a.AIVisibilityScore,
			a.EntityScore,
		)
	}

	fmt.Printf("\nTotal: %d analyses\n", len(analyses))
	return nil
}

func ShowAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: db show <analysis_id>")
	}

	var id int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil {
		return fmt.Errorf("invalid analysis ID %q", c.Args().First())
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	analysis, err := database.GetAnalysis(id)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func InitAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	fmt.Printf("Database initialized at %s\n", database.Path())
	return nil
}

// truncate shortens s to at most max display runes, eliding with "...".
// Slicing on runes keeps multibyte domains intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
