// Command pylist-examples prints the pylist demonstration scenarios.
//
// Usage:
//
//	pylist-examples [-config file] [-seed n] [-list] [example ...]
//
// Without arguments every enabled example runs. A pylist.yaml found in the
// current directory or one of its parents is used when -config is not given.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/funvibe/pylist/internal/config"
	"github.com/funvibe/pylist/internal/examples"
	"github.com/funvibe/pylist/pkg/cell"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	configPath := flag.String("config", "", "run configuration file (YAML)")
	seed := flag.Uint64("seed", 0, "seed for random choices (0: from config or random)")
	list := flag.Bool("list", false, "list example names and exit")
	flag.Parse()

	if *list {
		for _, ex := range examples.All() {
			state := "enabled"
			if !ex.Enabled {
				state = "disabled"
			}
			fmt.Printf("%-28s %s\n", ex.Name, state)
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cell.SetIdentityScheme(cfg.IdentityScheme())

	selected, err := examples.Select(cfg, flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	r := &examples.Runner{
		Out:   os.Stdout,
		Color: examples.ColorEnabled(cfg.Color, os.Stdout),
		Seed:  pickSeed(*seed, cfg.Seed),
	}
	if err := r.Run(selected); err != nil {
		log.Fatalf("pylist-examples: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, fmt.Errorf("looking for config: %w", err)
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	return config.LoadConfig(path)
}

func pickSeed(flagSeed, cfgSeed uint64) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfgSeed != 0:
		return cfgSeed
	}
	return rand.Uint64()
}
