// Types command lists the registered destinations and their shapes.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"valuecast/descriptor"
	"valuecast/store"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered destination types",
	Long: `Types prints every destination name the bind command accepts, the Go
type behind it, its classified shape, and for enums the defined members.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	dests := store.Destinations()

	for _, name := range destinationNames() {
		d, err := service.Describe(dests[name])
		if err != nil {
			return fmt.Errorf("describe %s: %w", name, err)
		}

		line := fmt.Sprintf("%-10s %-22s %s", name, d.Type.String(), d.Shape)
		if d.Shape == descriptor.ShapeEnum {
			line += " {" + strings.Join(d.Enum.Names(), ", ") + "}"
			if d.Enum.Flags {
				line += " flags"
			}
		}

		fmt.Println(line)
	}

	return nil
}

func destinationNames() []string {
	dests := store.Destinations()

	names := make([]string, 0, len(dests))
	for name := range dests {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
