// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dictcheck grades dictation submissions against a template.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/mistakes"
)

var version = "0.1.0-dev"

// app holds the state shared by all subcommands. It is populated before a subcommand runs.
type app struct {
	cfg    *Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "dictcheck",
		Short: "Grade dictation submissions",
		Long: `dictcheck compares dictation submissions with a template text and reports
the mistakes in each submission.

Mistakes have a content hash that is stable across submissions of the same
template. A register database collects known mistakes by hash.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path of the YAML configuration file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDiffCmd(a),
		newGradeCmd(a),
		newLabelCmd(a),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dictcheck version %s\n", version)
			return nil
		},
	}
}

// readText reads a file, "-" reads stdin. A single trailing newline is removed.
func readText(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func records(ms []mistakes.Mistake) []mistakes.Record {
	out := make([]mistakes.Record, len(ms))
	for i, m := range ms {
		out[i] = mistakes.Export(m)
	}
	return out
}

// describe returns a one line description of m.
func describe(m *mistakes.Mistake) string {
	s := fmt.Sprintf("%s %-5v %-6v %q", mistakes.FormatHash(m.Hash()), m.Kind, m.Subtype, m.Word)
	if m.Kind == mistakes.Mixed {
		s += fmt.Sprintf(" -> %q", m.WordCorrect)
	}
	return s
}
