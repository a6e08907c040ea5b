package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/display"
)

// CatalogCmd groups knowledge-base inspection commands.
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the knowledge base",
	Long: `Inspect the entity/attribute catalog the game runs on.

Examples:
  akinator catalog stats      # Entity and attribute counts
  akinator catalog validate   # Data quality checks`,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE:  runCatalogStats,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for data problems",
	Long: `Check the catalog for data problems: attributes no entity uses and
entities with sparse attribute coverage. Load-time rules (duplicate ids,
unknown attribute keys, out-of-range values) are already enforced when
the file is read; this reports softer quality issues.`,
	RunE: runCatalogValidate,
}

func init() {
	CatalogCmd.AddCommand(catalogStatsCmd)
	CatalogCmd.AddCommand(catalogValidateCmd)
}

type catalogStats struct {
	Path          string  `json:"path"`
	Entities      int     `json:"entities"`
	Attributes    int     `json:"attributes"`
	RelatedGroups int     `json:"related_groups"`
	Coverage      float64 `json:"coverage"` // share of entity/attribute cells with an explicit value
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	data, err := loadGameData()
	if err != nil {
		return err
	}

	stats := catalogStats{
		Path:          data.cfg.Catalog.Path,
		Entities:      data.catalog.EntityCount(),
		Attributes:    data.catalog.AttributeCount(),
		RelatedGroups: len(data.related),
	}
	cells := stats.Entities * stats.Attributes
	if cells > 0 {
		var filled int
		for _, e := range data.catalog.Entities() {
			filled += len(e.Attributes)
		}
		stats.Coverage = float64(filled) / float64(cells)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	tableData := pterm.TableData{
		{"Catalog", stats.Path},
		{"Entities", fmt.Sprintf("%d", stats.Entities)},
		{"Attributes", fmt.Sprintf("%d", stats.Attributes)},
		{"Related groups", fmt.Sprintf("%d", stats.RelatedGroups)},
		{"Attribute coverage", fmt.Sprintf("%.0f%%", stats.Coverage*100)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}

type catalogIssue struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	data, err := loadGameData()
	if err != nil {
		return err
	}

	var issues []catalogIssue

	// Attributes no entity carries read as 0.5 for everyone and can never
	// split a candidate set.
	used := make(map[string]int)
	for _, e := range data.catalog.Entities() {
		for key := range e.Attributes {
			used[key]++
		}
	}
	for _, a := range data.catalog.Attributes() {
		if used[a.Key] == 0 {
			issues = append(issues, catalogIssue{
				Kind:    "unused_attribute",
				Subject: a.Key,
				Detail:  "no entity defines this attribute",
			})
		}
	}

	// Entities with very few attributes are hard to separate from anything.
	threshold := data.catalog.AttributeCount() / 4
	for _, e := range data.catalog.Entities() {
		if len(e.Attributes) < threshold {
			issues = append(issues, catalogIssue{
				Kind:    "sparse_entity",
				Subject: e.Name,
				Detail:  fmt.Sprintf("only %d of %d attributes defined", len(e.Attributes), data.catalog.AttributeCount()),
			})
		}
	}

	// Related-table keys that name no attribute do nothing.
	for key, relatedKeys := range data.related {
		keys := append([]string{key}, relatedKeys...)
		for _, k := range keys {
			if _, ok := data.catalog.AttributeByKey(k); !ok {
				issues = append(issues, catalogIssue{
					Kind:    "unknown_related_key",
					Subject: k,
					Detail:  "related table references an attribute the catalog does not define",
				})
			}
		}
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(struct {
			Issues []catalogIssue `json:"issues"`
		}{Issues: issues})
	}

	if len(issues) == 0 {
		pterm.Success.Println("Catalog looks healthy")
		return nil
	}
	for _, issue := range issues {
		pterm.Warning.Printf("%s: %s (%s)\n", issue.Kind, issue.Subject, issue.Detail)
	}
	return nil
}
