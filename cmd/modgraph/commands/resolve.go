package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/modgraph/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [root]",
		Short: "Resolve and print the modules of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := c.app.Resolve(cmd.Context(), rootArg(args))
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), graph)
			}
			return writeTable(cmd.OutOrStdout(), graph)
		},
	}
	cmd.Flags().Bool("json", false, "Print the module graph as JSON")
	return cmd
}

type moduleView struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind"`
	ContentRoots  []string `json:"contentRoots"`
	Dependencies  []string `json:"dependencies"`
	JavaVersion   string   `json:"javaVersion,omitempty"`
	KotlinVersion string   `json:"kotlinVersion,omitempty"`
}

func writeJSON(w io.Writer, graph domain.ModuleGraph) error {
	views := make([]moduleView, len(graph))
	for i, m := range graph {
		views[i] = moduleView{
			ID:            m.ID,
			Kind:          string(m.Kind),
			ContentRoots:  nonNil(m.ContentRoots),
			Dependencies:  nonNil(m.Dependencies),
			JavaVersion:   m.JavaVersion,
			KotlinVersion: m.KotlinVersion,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func writeTable(w io.Writer, graph domain.ModuleGraph) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "MODULE\tKIND\tDEPENDENCIES\tCONTENT ROOTS")
	for _, m := range graph {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.ID,
			m.Kind,
			orDash(strings.Join(m.Dependencies, ",")),
			orDash(strings.Join(m.ContentRoots, ",")),
		)
	}
	return tw.Flush()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
