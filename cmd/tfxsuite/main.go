package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kindlychung/TornadoFX-Suite/internal/breakdown"
	"github.com/kindlychung/TornadoFX-Suite/internal/config"
	"github.com/kindlychung/TornadoFX-Suite/internal/crawler"
	"github.com/kindlychung/TornadoFX-Suite/internal/frontend"
	"github.com/kindlychung/TornadoFX-Suite/internal/generator"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

var (
	rootCmd = &cobra.Command{
		Use:   "tfxsuite",
		Short: "Kotlin class breakdown and UI test stub generator",
	}
	vocabPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vocabPath, "vocab", "v", "", "Path to a vocabulary override file (YAML)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(generateCmd)
}

// initCrawler wires the parser, vocabulary and crawler.
func initCrawler() (*crawler.Crawler, error) {
	voc := vocab.Default()
	if vocabPath != "" {
		var err error
		voc, err = vocab.Load(vocabPath)
		if err != nil {
			return nil, err
		}
	}

	parser, err := frontend.NewParser("kotlin")
	if err != nil {
		return nil, err
	}
	return crawler.NewCrawler(parser, voc), nil
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Analyze Kotlin sources and print the breakdown IR as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		cr, err := initCrawler()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		all := make(map[string]*breakdown.Result)
		err = cr.ScanProject(path, func(file string, res *breakdown.Result) {
			all[file] = res
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode results: %v", err)
		}
		fmt.Println(string(out))
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Analyze Kotlin sources and emit TestFX test stubs",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.LoadConfig("config.yaml")
		if err != nil {
			cfg = config.DefaultConfig()
		}

		cr, err := initCrawler()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		gen := generator.NewTestFXGenerator()
		files := 0
		err = cr.ScanProject(path, func(file string, res *breakdown.Result) {
			files++
			if err := gen.Generate(res, cfg.Output.Dir); err != nil {
				log.Printf("Failed to generate tests for %s: %v", file, err)
			}
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		fmt.Printf("✅ Generated test stubs for %d files in '%s'.\n", files, cfg.Output.Dir)
	},
}
