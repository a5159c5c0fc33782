// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds cwim's session configuration. cwim takes no
// flags (spec §6), so unlike the teacher's Config — which carries
// number format, index origin, input/output base, and a debug flag
// set — this is a tiny immutable struct built once in main and passed
// by value.
package config

// Config is the session configuration: the REPL prompt and the
// history file path (spec §6's ".cwim_history in the working
// directory").
type Config struct {
	Prompt      string
	HistoryFile string
}

// Default returns cwim's fixed configuration.
func Default() Config {
	return Config{
		Prompt:      "cwim> ",
		HistoryFile: ".cwim_history",
	}
}
