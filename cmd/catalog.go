package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/byiringiro-albert/portfolio/internal/catalog"
	"github.com/byiringiro-albert/portfolio/internal/config"
	"github.com/byiringiro-albert/portfolio/internal/filter"
	"github.com/byiringiro-albert/portfolio/internal/models"
)

func newCatalogCmd() *cobra.Command {
	var source string
	var facet string
	var query string
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List publications from the catalog",
		Long: `Load the publications catalog and print the filtered view.

A facet matches records whose category contains it, or whose year equals it.
A query matches title, abstract, keywords and authors. When both are given
the query is applied last and decides the result.`,
		Example: `  # List every publication
  portfolio catalog

  # Journal articles as JSON
  portfolio catalog --filter journal --format json

  # Search a parquet catalog
  portfolio catalog --source publications.parquet --query climate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				source = cfg.CatalogSource
			}

			records, err := catalog.NewLoader(source).Load(cmd.Context())
			if err != nil {
				return err
			}

			view := filter.NewView(records)
			if cmd.Flags().Changed("filter") {
				view.ApplyFacet(facet)
			}
			if cmd.Flags().Changed("query") {
				view.ApplySearch(query)
			}

			return writeCatalog(cmd.OutOrStdout(), view.Results(), format)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Catalog path or URL (defaults to CATALOG_SOURCE)")
	cmd.Flags().StringVar(&facet, "filter", filter.FacetAll, "Facet: category token or year")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text query")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	return cmd
}

func writeCatalog(w io.Writer, records []models.Publication, format string) error {
	if records == nil {
		records = []models.Publication{}
	}
	doc := models.CatalogDocument{Publications: records}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tYEAR\tCATEGORY\tTITLE\tAUTHORS")
		fmt.Fprintln(tw, "--\t----\t--------\t-----\t-------")
		for _, pub := range records {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", pub.ID, pub.Year, pub.Category, pub.Title, strings.Join(pub.Authors, ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\nTotal: %d publications\n", len(records))
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
