// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/citymap"
	"github.com/cpmech/citygen/config"
	"github.com/cpmech/citygen/export"
)

func main() {

	exitCode := 0

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			exitCode = 1
		}
		os.Exit(exitCode)
	}()

	io.PfWhite("\ncitygen -- procedural city road-network generator\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("please provide a configuration file path. Ex.: city.json")
	}
	cfgPath := flag.Arg(0)

	cfg, err := config.Read(cfgPath)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("> generating with seed=%d size=%v\n", cfg.Seed, cfg.Size)
	m, err := citymap.Build(cfg)
	if err != nil {
		chk.Panic("%v", err)
	}

	outPath := outputPath(cfgPath)
	fc := export.Build(m)
	export.WriteFile(outPath, fc)
	io.PfGreen("> wrote %s\n", outPath)
}

// outputPath derives the GeoJSON output path from the configuration
// path: same directory and base name, ".geojson" extension.
func outputPath(cfgPath string) string {
	base := filepath.Base(cfgPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(cfgPath), base+".geojson")
}
