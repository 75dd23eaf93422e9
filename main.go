package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kindlychung/TornadoFX-Suite/internal/breakdown"
	"github.com/kindlychung/TornadoFX-Suite/internal/config"
	"github.com/kindlychung/TornadoFX-Suite/internal/crawler"
	"github.com/kindlychung/TornadoFX-Suite/internal/frontend"
	"github.com/kindlychung/TornadoFX-Suite/internal/generator"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = config.DefaultConfig()
	}

	// 2. Initialize Components
	voc := vocab.Default()
	if cfg.Vocabulary.Path != "" {
		voc, err = vocab.Load(cfg.Vocabulary.Path)
		if err != nil {
			log.Fatalf("Failed to load vocabulary: %v", err)
		}
	}

	parser, err := frontend.NewParser("kotlin")
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	cr := crawler.NewCrawler(parser, voc)
	gen := generator.NewTestFXGenerator()

	// 3. Scan Project
	fmt.Printf("🚀 Scanning project at %s...\n", cfg.Project.Root)
	classes, files := 0, 0
	err = cr.ScanProject(cfg.Project.Root, func(path string, res *breakdown.Result) {
		files++
		classes += len(res.ClassBreakdowns)

		// 4. Emit test stubs per file
		if err := gen.Generate(res, cfg.Output.Dir); err != nil {
			log.Printf("Failed to generate tests for %s: %v", path, err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to scan project: %v", err)
	}

	fmt.Printf("✅ Analyzed %d files, %d classes\n", files, classes)
	fmt.Printf("✨ Process complete! Check the '%s' directory for generated tests.\n", cfg.Output.Dir)
}
