// Command simdinfo reports CPU vector capabilities and checks the kernel tiers.
//
// Usage:
//
//	simdinfo info [--format text|yaml|json]
//	simdinfo verify [--size N] [--seed S]
//	simdinfo bench [--sizes 64,1024,65536]
//
// Global flags:
//
//	--generic      pretend no vector extension is available
//	--log-level    debug, info, warn or error
//	--log-json     emit logs as JSON
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/kernel"
)

// env is the state shared by all subcommands, filled in before they run.
type env struct {
	logger   *slog.Logger
	features cpu.Features
}

// dispatcher returns a kernel dispatcher for the selected feature snapshot.
func (e *env) dispatcher() *kernel.Dispatcher {
	return kernel.New(kernel.WithFeatures(e.features), kernel.WithLogger(e.logger))
}

func newRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "simdinfo",
		Short: "Inspect CPU vector support and the kernel tiers built on it",
		Long: `simdinfo prints the detected CPU capabilities, checks that the scalar,
unaligned and aligned kernel tiers agree with each other and with reference
libraries, and benchmarks them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			asJSON, _ := cmd.Flags().GetBool("log-json")
			generic, _ := cmd.Flags().GetBool("generic")

			logger, err := newLogger(cmd.ErrOrStderr(), level, asJSON)
			if err != nil {
				return err
			}
			e.logger = logger

			e.features = cpu.DetectFeatures()
			if generic {
				e.features.ForceGeneric = true
			}
			logger.Debug("cpu detected",
				"vendor", e.features.VendorString,
				"brand", e.features.BrandName,
				"level", e.features.Level().String(),
			)
			return nil
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("generic", false, "Ignore vector extensions and run scalar code only")

	rootCmd.AddCommand(newInfoCmd(e), newVerifyCmd(e), newBenchCmd(e))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
