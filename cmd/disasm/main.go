// Command disasm decodes an 8086 instruction stream and prints one line of
// assembly per instruction.
package main

import (
	"fmt"
	"os"

	"github.com/retroenv/sim8086/internal/xlog"
	"github.com/retroenv/sim8086/x86"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "disasm <input-binary-path>",
		Short: "Decode an 8086 instruction stream and print it as assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decode diagnostics to stderr")
	return cmd
}

func run(path string, verbose bool) error {
	log := xlog.New()
	if verbose {
		log.SetLevel(xlog.DebugLevel)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to open file %s: %w", path, err)
	}

	cur := x86.NewCursor(data)
	for !cur.Done() {
		pos := cur.Pos
		ins, err := x86.Decode(cur)
		if err != nil {
			log.Debug("truncated instruction stream", "offset", pos, "error", err)
			break
		}
		if ins.Op == x86.OpUnknown {
			log.Debug("unknown opcode", "offset", pos, "byte", data[pos])
		}
		fmt.Println(x86.Print(ins))
	}
	return nil
}
