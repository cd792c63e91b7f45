package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/config"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/game"
)

func main() {
	// Change working directory to executable location
	// This ensures assets are found on all platforms
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if err := os.Chdir(execDir); err != nil {
			fmt.Printf("Warning: could not change to executable directory: %v\n", err)
		}
	}

	cfg, err := config.Load("convexglyph.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	game.New(cfg).Run()
}
