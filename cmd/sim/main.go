// Command sim decodes and executes an 8086 instruction stream, printing
// each instruction alongside the register writes it caused, then a final
// dump of register and flag state.
package main

import (
	"fmt"
	"os"

	"github.com/retroenv/sim8086/internal/config"
	"github.com/retroenv/sim8086/internal/xlog"
	"github.com/retroenv/sim8086/vm"
	"github.com/retroenv/sim8086/x86"
	"github.com/spf13/cobra"
)

// simConfig holds the VM defaults cmd/sim can load from an INI file; flags
// take precedence over a loaded config, which takes precedence over these
// built-in defaults.
type simConfig struct {
	MemorySize int  `config:"vm.memory_size,default=65536"`
	InitialSP  int  `config:"vm.initial_sp,default=0"`
	Trace      bool `config:"vm.trace,default=true"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var trace bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sim <input-binary-path>",
		Short: "Simulate an 8086 instruction stream against register and flag state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], configPath, cmd.Flags().Changed("trace"), trace, verbose)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "INI config file overriding VM defaults")
	cmd.Flags().BoolVar(&trace, "trace", true, "print a register-write trace after each instruction")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decode diagnostics to stderr")
	return cmd
}

func run(path, configPath string, traceFlagSet bool, traceFlag, verbose bool) error {
	log := xlog.New()
	if verbose {
		log.SetLevel(xlog.DebugLevel)
	}

	cfg := simConfig{MemorySize: 65536, Trace: true}
	if configPath != "" {
		if err := config.Load(configPath, &cfg); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if traceFlagSet {
		cfg.Trace = traceFlag
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to open file %s: %w", path, err)
	}
	mem := make([]byte, cfg.MemorySize)
	if len(data) > len(mem) {
		mem = data
	} else {
		copy(mem, data)
	}

	s := vm.New(mem, vm.WithInitialSP(uint16(cfg.InitialSP)))
	err = vm.Run(s, func(result vm.StepResult) {
		if cfg.Trace {
			fmt.Println(result.Trace())
		} else {
			fmt.Println(x86.Print(result.Instruction))
		}
	})
	if err != nil {
		log.Debug("run stopped early", "error", err)
	}

	fmt.Print(vm.DumpState(s))
	return nil
}
