package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/njchilds90/allometry"
)

func validateFormat(f string) error {
	switch f {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("invalid format %q: must be json or text", f)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(w io.Writer, r CLIResult) error {
	if flagFormat == "json" {
		return writeJSON(w, r)
	}
	fmt.Fprintln(w, formatFloat(r.Result))
	if len(r.Roots) > 0 {
		parts := make([]string, len(r.Roots))
		for i, x := range r.Roots {
			parts[i] = formatFloat(x)
		}
		fmt.Fprintf(w, "roots: %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// formatSpeciesText formats species as aligned columns.
func formatSpeciesText(w io.Writer, infos []allometry.SpeciesInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tRELATIONSHIPS")
	for _, s := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Code, s.Name, s.Relationships)
	}
	tw.Flush()
}

// formatRelationshipsText formats one species' equations as aligned columns.
func formatRelationshipsText(w io.Writer, code string, rels []allometry.RelationshipInfo) {
	fmt.Fprintf(w, "%s: %d relationships\n", code, len(rels))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEPENDENT\tDEPENDENT\tFORM\tFORMULA")
	for _, r := range rels {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Independent, r.Dependent, r.Form, r.Formula)
	}
	tw.Flush()
}
