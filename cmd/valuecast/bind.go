// Bind command reads a YAML document and binds it onto a destination type.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"valuecast/internal/diagnostic"
	"valuecast/internal/document"
	"valuecast/store"
	"valuecast/value"
)

var bindCmd = &cobra.Command{
	Use:   "bind <destination> <file>",
	Short: "Bind a YAML document onto a destination type",
	Long: `Bind reads the YAML document from the given file ("-" for stdin) and
binds it onto the named destination type. The bound value is dumped on
success; on failure the binding diagnostics are printed.

Example:
  valuecast bind order order.yaml
  valuecast bind status - <<< '"Paid"'`,
	Args: cobra.ExactArgs(2),
	RunE: runBind,
}

func runBind(cmd *cobra.Command, args []string) error {
	destName, path := args[0], args[1]

	dst, ok := store.Destinations()[destName]
	if !ok {
		return fmt.Errorf("unknown destination %q (valid: %s)",
			destName, strings.Join(destinationNames(), ", "))
	}

	src, err := readDocument(path)
	if err != nil {
		return err
	}

	out, err := binder.Bind(src, dst)
	if err != nil {
		var diags diagnostic.Diagnostics
		diags.AddBindError(dst.String(), err)

		for _, d := range diags.Errors {
			fmt.Fprintln(os.Stderr, d.String())
		}

		return errors.New("binding failed")
	}

	spew.Dump(out)

	return nil
}

func readDocument(path string) (value.Value, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return value.Null(), fmt.Errorf("read stdin: %w", err)
		}
		return document.Parse(data)
	}

	return document.LoadFile(path)
}
