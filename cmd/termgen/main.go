// Command termgen compiles a Starlark generator program and writes the C
// source it produces.
//
// Usage:
//
//	termgen generate --file gen.star --out out.c
//	termgen generate --file gen.star --config termgen.yaml
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/termgen/go-termgen"
	"github.com/termgen/go-termgen/options"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termgen",
		Short:         "Generate C source from Starlark generator programs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run a generator program and write the produced C source",
		RunE:  runGenerate,
	}
	cmd.Flags().StringP("file", "f", "", "generator program to run (required)")
	cmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	cmd.Flags().String("config", "", "YAML config file (max_depth, log_level)")
	cmd.Flags().Int("max-depth", 0, "reduction depth limit (overrides config file)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	out, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")

	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", file, err)
	}

	var opts []options.Option
	if configPath != "" {
		opts = append(opts, options.WithConfigFile(configPath))
	}
	if maxDepth > 0 {
		opts = append(opts, options.WithMaxDepth(maxDepth))
	}

	generator, err := termgen.FromStarlarkFile(abs, opts...)
	if err != nil {
		slog.Error("failed to build generator", "file", abs, "error", err)
		return err
	}

	resp, err := generator.Generate(cmd.Context())
	if err != nil {
		slog.Error("generation failed", "file", abs, "error", err)
		return err
	}
	slog.Debug("generation complete", "unitID", resp.GetUnitID(), "execTime", resp.GetExecTime())

	if out == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), resp.Output())
		return err
	}

	if err := os.WriteFile(out, []byte(resp.Output()), 0o644); err != nil {
		slog.Error("failed to write output", "path", out, "error", err)
		return err
	}
	return nil
}
