// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/svgconv/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	RunE:  runFormats,
}

func init() {
	formatsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if jsonOutput {
		type formatInfo struct {
			Name        string `json:"name"`
			Extension   string `json:"extension"`
			Description string `json:"description"`
		}
		infos := make([]formatInfo, len(types.Formats))
		for i, f := range types.Formats {
			infos[i] = formatInfo{
				Name:        string(f),
				Extension:   f.Extension(),
				Description: f.Description(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-5s  %s\n", "Format", "Ext", "Description")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 64))
	for _, f := range types.Formats {
		fmt.Fprintf(os.Stdout, "%-6s  %-5s  %s\n", f, f.Extension(), f.Description())
	}
	return nil
}
