/*
 * reaction.go, part of verchem.
 *
 * Copyright 2026 The verchem authors <verchem{at}verchemDOTxyz>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/chemref"
	"github.com/verchemxyz/verchem-sub008/chemtutor"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var reactionCmd = &cobra.Command{
	Use:   "reaction [name]",
	Short: "The reaction families of the data book",
	Long: `The reaction families of the data book. Without a name, the whole
table; with one, the family explained in full.

Examples:
  verchem reaction
  verchem reaction combustion`,
	Args: cobra.ArbitraryArgs,
	RunE: runReaction,
}

func init() {
	rootCmd.AddCommand(reactionCmd)
}

func runReaction(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		rows := [][]string{}
		for _, r := range chemref.Reactions() {
			rows = append(rows, []string{r.Name, r.Kind, r.Pattern})
		}
		ui.Table([]string{"NAME", "KIND", "PATTERN"}, rows)
		return nil
	}
	//multiword names work unquoted: verchem reaction double displacement
	name := strings.Join(args, " ")
	text, err := chemtutor.ExplainReaction(name)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
