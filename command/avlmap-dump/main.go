// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// load an ordered map from command line "key=value" words, optionally
// erase some keys, then show the ASCII tree and its integrity status
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap"
)

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "values", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "erase", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--values] [--check] [--erase=KEY]… [--verbose] key[=value]…", program)
	}

	// console output only in verbose mode, the log file is always
	// written under the temporary directory
	level := "critical"
	console := false
	if len(options["verbose"]) > 0 {
		level = "info"
		console = true
	}
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "avlmap-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   console,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")

	tree := avlmap.New[string, string]()
	for _, arg := range arguments {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			value = key
		}
		*tree.Index(key) = value
	}
	log.Infof("loaded: %d nodes", tree.Count())

	for _, key := range options["erase"] {
		cursor := tree.Find(key)
		if cursor.IsEnd() {
			log.Warnf("erase: key not present: %q", key)
			continue
		}
		tree.Erase(cursor)
		log.Infof("erased: %q", key)
	}

	tree.Fprint(os.Stdout, len(options["values"]) > 0)

	if len(options["check"]) > 0 {
		if !tree.SanityCheck() {
			exitwithstatus.Message("%s: sanity check failed", program)
		}
		fmt.Printf("sanity check passed: %d nodes\n", tree.Count())
	}
}
