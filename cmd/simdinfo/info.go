package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-simd/cpu"
)

// infoReport extends the CPU report with the kernel selection.
type infoReport struct {
	CPU    cpu.Report `yaml:"cpu" json:"cpu"`
	Kernel kernelInfo `yaml:"kernel" json:"kernel"`
	Vek    vekInfo    `yaml:"vek" json:"vek"`
}

type kernelInfo struct {
	Implementation string `yaml:"implementation" json:"implementation"`
	Width          int    `yaml:"width" json:"width"`
	Alignment      int    `yaml:"alignment" json:"alignment"`
}

type vekInfo struct {
	Accelerated bool     `yaml:"accelerated" json:"accelerated"`
	Features    []string `yaml:"features" json:"features"`
}

func newInfoCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detected CPU features and the selected kernel implementation",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return writeInfo(cmd.OutOrStdout(), e, format)
		},
	}
	cmd.Flags().String("format", "text", "Output format: text, yaml, json")
	return cmd
}

func buildInfo(e *env) infoReport {
	d := e.dispatcher()
	vi := vek32.Info()
	return infoReport{
		CPU: e.features.Report(),
		Kernel: kernelInfo{
			Implementation: d.Name(),
			Width:          d.Width(),
			Alignment:      d.Alignment(),
		},
		Vek: vekInfo{Accelerated: vi.Acceleration, Features: vi.CPUFeatures},
	}
}

func writeInfo(w io.Writer, e *env, format string) error {
	switch format {
	case "text":
		if err := cpu.Dump(w, e.features); err != nil {
			return err
		}
		r := buildInfo(e)
		_, err := fmt.Fprintf(w, "\nKernel: %s (%d lanes, %d-byte aligned tier)\nvek accelerated: %t\n",
			r.Kernel.Implementation, r.Kernel.Width, r.Kernel.Alignment, r.Vek.Accelerated)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(buildInfo(e)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(buildInfo(e), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}
