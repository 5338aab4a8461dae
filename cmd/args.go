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
	"strconv"
	"time"

	"github.com/pingcap/errors"
)

var (
	// ErrArgCount is returned for a wrong number of positional arguments.
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrArgN is returned for a philosopher count that is not a positive integer.
	ErrArgN = errors.New("N must be a positive integer")
	// ErrArgSeed is returned for a non-integer seed.
	ErrArgSeed = errors.New("seed must be an integer")
	// ErrArgDuration is returned for a negative or non-numeric duration.
	ErrArgDuration = errors.New("duration must be a non-negative number of seconds")
)

// runArgs are the positional arguments of a run.
type runArgs struct {
	n        int
	seed     int64
	duration time.Duration
}

func parseRunArgs(args []string) (runArgs, error) {
	if len(args) != 3 {
		return runArgs{}, errors.Annotatef(ErrArgCount, "expected 3, got %d", len(args))
	}
	n, err := parseN(args[0])
	if err != nil {
		return runArgs{}, err
	}
	seed, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return runArgs{}, errors.Annotatef(ErrArgSeed, "%q", args[1])
	}
	d, err := parseDuration(args[2])
	if err != nil {
		return runArgs{}, err
	}
	return runArgs{n: n, seed: seed, duration: d}, nil
}

func parseN(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, errors.Annotatef(ErrArgN, "%q", arg)
	}
	return n, nil
}

// parseDuration accepts whole seconds, or a Go duration such as 1.5s.
func parseDuration(arg string) (time.Duration, error) {
	if secs, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if secs < 0 {
			return 0, errors.Annotatef(ErrArgDuration, "%q", arg)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(arg)
	if err != nil || d < 0 {
		return 0, errors.Annotatef(ErrArgDuration, "%q", arg)
	}
	return d, nil
}
