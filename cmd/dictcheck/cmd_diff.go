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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"znkr.io/mistakes"
	"znkr.io/mistakes/annotate"
)

func newDiffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff CHECK CORRECT",
		Short: "Show the mistakes of a single submission",
		Long: `Compare the submission in file CHECK with the template in file CORRECT.

The submission is printed with all mistakes marked inline, followed by one
line per mistake. With --context, only excerpts around the mistakes are
printed. Use "-" to read the submission from stdin.

Example:
  dictcheck diff submission.txt template.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			correct, err := readText(cmd, args[1])
			if err != nil {
				return err
			}
			cfg := *a.cfg
			if cmd.Flags().Changed("punctuation") {
				p, _ := cmd.Flags().GetString("punctuation")
				cfg.Punctuation = &p
			}
			if noFold, _ := cmd.Flags().GetBool("no-fold"); noFold {
				fold := false
				cfg.Fold = &fold
			}
			if cmd.Flags().Changed("color") {
				cfg.Color, _ = cmd.Flags().GetBool("color")
			}

			ms := mistakes.Compute(check, correct, cfg.options()...)
			a.logger.Debug("computed mistakes", "check", args[0], "correct", args[1], "mistakes", len(ms))

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), records(ms))
			}
			var opts []annotate.Option
			if cfg.Color {
				opts = append(opts, annotate.TerminalColors())
			}
			out := cmd.OutOrStdout()
			if context, _ := cmd.Flags().GetInt("context"); context >= 0 {
				for h := range annotate.Hunks(check, ms, context) {
					fmt.Fprintf(out, "@@ %d,%d @@ %s\n", h.Start, h.End, annotate.Excerpt(check, h, opts...))
				}
			} else {
				fmt.Fprintln(out, annotate.Text(check, ms, opts...))
			}
			for i := range ms {
				fmt.Fprintln(out, describe(&ms[i]))
			}
			return nil
		},
	}
	cmd.Flags().String("punctuation", "", "Punctuation characters that delimit words")
	cmd.Flags().Bool("no-fold", false, "Report substitutions as separate additions and deletions")
	cmd.Flags().Bool("color", false, "Mark mistakes with ANSI colors")
	cmd.Flags().Int("context", -1, "Print excerpts with this many characters around each mistake instead of the whole text")
	return cmd
}
