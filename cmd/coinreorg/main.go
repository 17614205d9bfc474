// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command coinreorg runs the reorganize pass over generated scene graphs
// and reports what it did.
package main

import (
	"os"

	"github.com/kazssym/coin/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
