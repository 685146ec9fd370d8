// Command radixtree-config manages a JSON radixtree.Config file for CI and
// build pipelines: initialize a default one, validate an existing one, or
// print it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/arborix/radixtree/internal/radixtree"
)

func main() {
	var (
		configFile = flag.String("config", "radixtree.json", "configuration file path")
		initFlag   = flag.Bool("init", false, "write a default configuration file")
		validate   = flag.Bool("validate", false, "validate the configuration file")
		show       = flag.Bool("show", false, "print the configuration file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage a radixtree build configuration file.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch {
	case *initFlag:
		if err := writeDefault(*configFile); err != nil {
			exitf("init: %v", err)
		}
		fmt.Printf("configuration initialized: %s\n", *configFile)
	case *validate:
		cfg, err := load(*configFile)
		if err != nil {
			exitf("load: %v", err)
		}
		if err := cfg.Validate(1); err != nil {
			exitf("invalid: %v", err)
		}
		fmt.Printf("configuration is valid: %s\n", *configFile)
	case *show:
		cfg, err := load(*configFile)
		if err != nil {
			exitf("load: %v", err)
		}
		data, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Println(string(data))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func writeDefault(path string) error {
	cfg := radixtree.Config{
		Bits:           30,
		MaxLeafSize:    4,
		KeepSingletons: false,
		GroupSize:      0,
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func load(path string) (radixtree.Config, error) {
	var cfg radixtree.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "radixtree-config: "+format+"\n", args...)
	os.Exit(1)
}
