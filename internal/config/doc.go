// Package config loads runtime and CLI configuration for ripple.
//
// The configuration is stored in ripple.toml. A missing file yields the
// defaults; present keys override them.
//
// # Configuration File Structure
//
//	[scheduler]
//	budget = "40ms"
//
//	[frames]
//	interval = "16ms"
//
//	[animations]
//	enabled = true
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[warnings]
//	rate = 1.0
//	burst = 5
//
//	[debug]
//	addr = "127.0.0.1:7070"
//
//	[bench]
//	vars = 64
//	iterations = 2000
//
// # Usage
//
//	cfg, err := config.Load("ripple.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Budget:", cfg.Scheduler.Budget)
package config
