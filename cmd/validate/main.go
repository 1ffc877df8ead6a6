package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollowgate/lantern/internal/config"
	"github.com/hollowgate/lantern/internal/logger"
	"github.com/hollowgate/lantern/pkg/blueprint"
	"github.com/hollowgate/lantern/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <blueprint.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	filename := os.Args[1]
	if err := validateFile(filename); err != nil {
		log.Error("validation failed", "file", filename, "error", err)
		os.Exit(1)
	}
	fmt.Println("Blueprint file is valid!")
}

func validateFile(filename string) error {
	base := filepath.Base(filename)
	if !strings.HasSuffix(base, ".yaml") && !strings.HasSuffix(base, ".yml") {
		return fmt.Errorf("blueprint file must have a .yaml extension: %s", base)
	}

	doc, err := blueprint.Load(filename)
	if err != nil {
		return err
	}
	gs, err := doc.Build()
	if err != nil {
		return err
	}

	// Report a few authoring smells that are legal but usually wrong.
	for id, loc := range gs.Locations {
		if !loc.Lit && !hasLightSource(gs) {
			fmt.Printf("note: location %q is dark and the blueprint defines no light source\n", id)
			break
		}
	}
	return nil
}

func hasLightSource(gs *world.GameState) bool {
	for _, it := range gs.Items {
		if it.Has(world.FlagLightSource) {
			return true
		}
	}
	return false
}
