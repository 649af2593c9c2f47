package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/daniilsolovey/editions/internal/catalog"
	"github.com/daniilsolovey/editions/internal/db"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		query       catalog.Query
		page, limit int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search, filter, sort and paginate editions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("page") {
				query.Page = &page
			}
			if cmd.Flags().Changed("limit") {
				query.Limit = &limit
			}

			return opts.withManager(cmd.Context(), func(m *catalog.Manager) error {
				result, err := m.Editions(cmd.Context(), query)
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd.OutOrStdout(), newPageOutput(*result))
				}
				return writeTable(cmd.OutOrStdout(), *result)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&query.Query, "query", "q", "", "Case-insensitive search in title and description")
	f.StringVar(&query.Category, "category", "", "Exact category filter")
	f.StringVar(&query.SortBy, "sort-by", catalog.SortByDate, "Sort field")
	f.StringVar(&query.Order, "order", catalog.OrderDesc, "Sort order: asc|desc")
	f.IntVar(&page, "page", catalog.DefaultPage, "Page number")
	f.IntVar(&limit, "limit", catalog.DefaultLimit, "Items per page")
	f.BoolVar(&asJSON, "json", false, "Print the page as JSON")

	return cmd
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one edition as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid edition id %q", args[0])
			}

			return opts.withManager(cmd.Context(), func(m *catalog.Manager) error {
				edition, err := m.EditionByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), toDocument([]catalog.Edition{*edition}).Editions[0])
			})
		},
	}
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog with the editions of a JSON or YAML document",
		Long: `Replace the catalog with the editions of a {"editions": [...]} document.
Files ending in .yaml or .yml are read as YAML, anything else as JSON.
Every edition is validated and ids must be unique before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			doc, err := decodeDocument(args[0], data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			return opts.withManager(cmd.Context(), func(m *catalog.Manager) error {
				if err := m.ImportEditions(cmd.Context(), catalog.NewEditions(doc.Editions)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d editions\n", len(doc.Editions))
				return nil
			})
		},
	}
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the catalog as a JSON or YAML document",
		Long: `Write the catalog as a {"editions": [...]} document. Files ending in
.yaml or .yml are written as YAML. Use "-" for JSON on stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withManager(cmd.Context(), func(m *catalog.Manager) error {
				list, err := m.ExportEditions(cmd.Context())
				if err != nil {
					return err
				}

				if args[0] == "-" {
					return writeJSON(cmd.OutOrStdout(), toDocument(list))
				}

				data, err := encodeDocument(args[0], toDocument(list))
				if err != nil {
					return err
				}
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[0], err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d editions to %s\n", len(list), args[0])
				return nil
			})
		},
	}
}

type pageOutput struct {
	Editions   []db.Edition `json:"editions"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

func newPageOutput(p catalog.Page) pageOutput {
	return pageOutput{
		Editions:   catalog.Map(p.Editions, catalog.Edition.ToDB),
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}

func toDocument(list []catalog.Edition) db.Document {
	return db.Document{Editions: catalog.Map(list, catalog.Edition.ToDB)}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decodeDocument(path string, data []byte) (db.Document, error) {
	var doc db.Document
	if isYAML(path) {
		return doc, yaml.Unmarshal(data, &doc)
	}
	return doc, json.Unmarshal(data, &doc)
}

func encodeDocument(path string, doc db.Document) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, page catalog.Page) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tPAGES\tTITLE")
	for _, e := range page.Editions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", e.ID, e.Date, e.Category, e.Pages, e.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "page %d of %d, %d editions\n", page.Page, page.TotalPages, page.Total)
	return err
}
