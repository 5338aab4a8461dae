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
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/zixu-w/DPP/model"
)

var (
	outfile string // Path to output file
	naive   bool   // Use left-then-right acquisition
)

// migoCmd represents the migo command
var migoCmd = &cobra.Command{
	Use:   "migo N",
	Short: "Print the MiGo types of a table",
	Long: `Print the MiGo types of a table of N

Forks are channels of capacity 1 holding a token while free. The output can
be checked for liveness with a MiGo verifier. Use --naive to see the
deadlocking left-then-right protocol.`,
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parseModelArgs(args)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := parseModelArgs(args)
		return writeTo(outfile, cmd.OutOrStdout(), model.NewMigo(n, order(naive)))
	},
}

func init() {
	migoCmd.Flags().StringVar(&outfile, "output", "", "output migo file")
	migoCmd.Flags().BoolVar(&naive, "naive", false, "take the left fork then the right fork")

	RootCmd.AddCommand(migoCmd)
}

func parseModelArgs(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Annotatef(ErrArgCount, "expected 1, got %d", len(args))
	}
	return parseN(args[0])
}

func order(naive bool) model.Order {
	if naive {
		return model.LeftRight
	}
	return model.Ordered
}
