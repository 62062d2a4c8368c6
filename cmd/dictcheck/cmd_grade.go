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
	"path/filepath"

	"github.com/spf13/cobra"
	"znkr.io/mistakes"
	"znkr.io/mistakes/internal/grade"
	"znkr.io/mistakes/internal/register"
)

type gradeOutput struct {
	Name     string            `json:"name"`
	Mistakes []mistakes.Record `json:"mistakes"`
}

func newGradeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade TEMPLATE SUBMISSION...",
		Short: "Grade many submissions against a template",
		Long: `Grade all SUBMISSION files against the TEMPLATE file.

Prints the number of mistakes per submission and the mistakes shared by
most submissions. With --register, all mistakes are recorded in the
register database.

Example:
  dictcheck grade template.txt class/*.txt --register register.db`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			var subs []grade.Submission
			for _, path := range args[1:] {
				text, err := readText(cmd, path)
				if err != nil {
					return err
				}
				subs = append(subs, grade.Submission{Name: filepath.Base(path), Text: text})
			}

			workers := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers, _ = cmd.Flags().GetInt("workers")
			}
			regPath := a.cfg.Register
			if cmd.Flags().Changed("register") {
				regPath, _ = cmd.Flags().GetString("register")
			}

			g := grade.New(template,
				grade.WithWorkers(workers),
				grade.WithLogger(a.logger),
				grade.WithOptions(a.cfg.options()...),
			)
			results, err := g.Grade(cmd.Context(), subs)
			if err != nil {
				return err
			}

			if regPath != "" {
				reg, err := register.Open(cmd.Context(), regPath)
				if err != nil {
					return err
				}
				defer reg.Close()
				for _, r := range results {
					if err := reg.Observe(cmd.Context(), r.Mistakes); err != nil {
						return err
					}
				}
				a.logger.Info("updated register", "path", regPath, "submissions", len(results))
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				out := make([]gradeOutput, len(results))
				for i, r := range results {
					out[i] = gradeOutput{Name: r.Name, Mistakes: records(r.Mistakes)}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s: %d mistakes (%d missing, %d superfluous, %d substituted)\n",
					r.Name, len(r.Mistakes), r.Count(mistakes.Add), r.Count(mistakes.Del), r.Count(mistakes.Mixed))
			}
			top, _ := cmd.Flags().GetInt("top")
			freqs := grade.Frequencies(results)
			if len(freqs) > 0 && top > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Most frequent mistakes:")
				for _, f := range freqs[:min(top, len(freqs))] {
					fmt.Fprintf(out, "%3d  %s\n", f.Count, describe(&f.Mistake))
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 0, "Number of submissions graded concurrently (0: one per CPU)")
	cmd.Flags().String("register", "", "Path of the register database")
	cmd.Flags().Int("top", 10, "Number of most frequent mistakes to print")
	return cmd
}
