// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"mica/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
