// Tonal - A perceptual colour ramp generator
//
// Tonal derives tint and shade ramps from seed colours and generates
// design token files for the web.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
