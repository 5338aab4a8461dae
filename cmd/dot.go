// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zixu-w/DPP/model"
)

var (
	dotOutfile string // Path to output file
	dotNaive   bool   // Use left-then-right acquisition
)

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot N",
	Short: "Print the table as a Graphviz graph",
	Long: `Print the table of N as a Graphviz dot graph

Each philosopher has an edge to each of its forks, labelled with the order
the fork is taken.`,
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parseModelArgs(args)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := parseModelArgs(args)
		dot, err := model.NewTopology(n, order(dotNaive))
		if err != nil {
			return err
		}
		return writeTo(dotOutfile, cmd.OutOrStdout(), dot)
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotOutfile, "output", "", "output dot file")
	dotCmd.Flags().BoolVar(&dotNaive, "naive", false, "take the left fork then the right fork")

	RootCmd.AddCommand(dotCmd)
}
