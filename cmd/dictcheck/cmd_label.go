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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"znkr.io/mistakes"
	"znkr.io/mistakes/internal/register"
)

func newLabelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label HASH [LABEL]",
		Short: "Show or set the label of a known mistake",
		Long: `Show the register entry of the mistake with the given HASH or, if LABEL is
given, attach LABEL to it first.

Example:
  dictcheck label 3f9a0c1d22e4b7a1 capitalization --register register.db`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := mistakes.ParseHash(args[0])
			if err != nil {
				return err
			}
			regPath := a.cfg.Register
			if cmd.Flags().Changed("register") {
				regPath, _ = cmd.Flags().GetString("register")
			}
			if regPath == "" {
				return errors.New("no register configured, use --register or the register config key")
			}

			reg, err := register.Open(cmd.Context(), regPath)
			if err != nil {
				return err
			}
			defer reg.Close()

			if len(args) == 2 {
				if err := reg.Label(cmd.Context(), hash, args[1]); err != nil {
					return err
				}
				a.logger.Debug("labeled mistake", "hash", args[0], "label", args[1])
			}
			e, err := reg.Lookup(cmd.Context(), hash)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"mistake": mistakes.Export(e.Mistake),
					"label":   e.Label,
					"count":   e.Count,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nlabel: %s\ncount: %d\n", describe(&e.Mistake), e.Label, e.Count)
			return nil
		},
	}
	cmd.Flags().String("register", "", "Path of the register database")
	return cmd
}
