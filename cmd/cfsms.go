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
	cfsmsOutfile string // Path to output file
	cfsmsNaive   bool   // Use left-then-right acquisition
)

// cfsmsCmd represents the cfsms command
var cfsmsCmd = &cobra.Command{
	Use:   "cfsms N",
	Short: "Print the CFSMs of a table",
	Long: `Print the communicating finite state machines of a table of N

There is one machine per philosopher and one per fork. Philosophers send
acquire, wait for grant and send release to each fork in turn.`,
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parseModelArgs(args)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := parseModelArgs(args)
		sys := model.NewCFSMs(n, order(cfsmsNaive))
		if err := writeTo(cfsmsOutfile, cmd.OutOrStdout(), sys); err != nil {
			return err
		}
		sys.PrintSummary(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	cfsmsCmd.Flags().StringVar(&cfsmsOutfile, "output", "", "output CFSMs file")
	cfsmsCmd.Flags().BoolVar(&cfsmsNaive, "naive", false, "take the left fork then the right fork")

	RootCmd.AddCommand(cfsmsCmd)
}
