package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nondualworks/docspine-landing/internal/catalog"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the page content in use",
	Long:  "Print the bookshelf services and links from the active catalog (builtin unless --catalog is set).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if cfg := GetConfig(); cfg != nil {
			path = cfg.Catalog.Path
		}
		cat, err := catalog.LoadOrBuiltin(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, summarizeCatalog(cat))
		}

		services, domains := cat.ShelfSummary()
		fmt.Fprintf(out, "%s (%s) from %s: %d services, %d domains\n\n",
			cat.Product, cat.License, cat.Source, services, domains)
		if err := writeTable(out, []string{"NAME", "DOMAIN", "HEIGHT", "DOCS", "COLOR"}, spineRows(cat)); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return writeTable(out, []string{"LINK", "URL", "EXTERNAL"}, linkRows(cat))
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Validate a catalog override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var cat *catalog.Catalog
		err := withProgress(cmd.ErrOrStderr(), "Validating "+args[0], func() error {
			var err error
			cat, err = catalog.Load(args[0])
			return err
		})
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(out, summarizeCatalog(cat))
		}
		services, domains := cat.ShelfSummary()
		fmt.Fprintf(out, "%s is valid: %d services, %d domains, %d script lines\n",
			args[0], services, domains, len(cat.Script))
		return nil
	},
}

type catalogSummary struct {
	Product  string         `json:"product"`
	License  string         `json:"license"`
	Source   string         `json:"source"`
	Services int            `json:"services"`
	Domains  int            `json:"domains"`
	Script   int            `json:"script_lines"`
	Spines   []spineSummary `json:"spines"`
}

type spineSummary struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Height int    `json:"height"`
	Docs   int    `json:"docs"`
	Color  string `json:"color"`
}

func summarizeCatalog(cat *catalog.Catalog) catalogSummary {
	services, domains := cat.ShelfSummary()
	summary := catalogSummary{
		Product:  cat.Product,
		License:  cat.License,
		Source:   cat.Source,
		Services: services,
		Domains:  domains,
		Script:   len(cat.Script),
		Spines:   make([]spineSummary, 0, len(cat.Spines)),
	}
	for _, spine := range cat.Spines {
		summary.Spines = append(summary.Spines, spineSummary{
			Name:   spine.Name,
			Domain: spine.Domain,
			Height: spine.Height,
			Docs:   spine.Docs,
			Color:  cat.Domains[spine.Domain].String(),
		})
	}
	return summary
}

func spineRows(cat *catalog.Catalog) [][]string {
	rows := make([][]string, 0, len(cat.Spines))
	for _, spine := range cat.Spines {
		rows = append(rows, []string{
			spine.Name,
			spine.Domain,
			strconv.Itoa(spine.Height),
			strconv.Itoa(spine.Docs),
			cat.Domains[spine.Domain].String(),
		})
	}
	return rows
}

func linkRows(cat *catalog.Catalog) [][]string {
	var rows [][]string
	add := func(link catalog.Link) {
		if link.URL == "" {
			return
		}
		rows = append(rows, []string{link.Label, link.URL, formatYesNo(link.External)})
	}
	for _, link := range cat.Nav {
		add(link)
	}
	add(cat.Hero.Primary)
	add(cat.Hero.Secondary)
	for _, layer := range cat.Layers {
		if layer.Link != nil {
			add(*layer.Link)
		}
	}
	for _, link := range cat.Footer {
		add(link)
	}
	return rows
}
