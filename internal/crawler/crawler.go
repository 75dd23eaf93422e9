package crawler

import (
	"io/fs"
	"log"
	"path/filepath"

	"github.com/kindlychung/TornadoFX-Suite/internal/breakdown"
	"github.com/kindlychung/TornadoFX-Suite/internal/frontend"
	"github.com/kindlychung/TornadoFX-Suite/internal/uigraph"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

// Crawler scans a directory tree for Kotlin sources and runs one breakdown
// session per file. Sessions share nothing but the read-only vocabulary, so
// a failed file never corrupts another file's results.
type Crawler struct {
	parser  *frontend.Parser
	vocab   *vocab.Vocabulary
	ignored []string
}

// NewCrawler creates a crawler over the given parser and vocabulary.
func NewCrawler(parser *frontend.Parser, v *vocab.Vocabulary) *Crawler {
	return &Crawler{
		parser:  parser,
		vocab:   v,
		ignored: []string{".git", "build", "out", "node_modules", "testdata"},
	}
}

// ScanProject walks the root directory and streams one Result per analyzed
// file. Per-file failures are logged and skipped.
func (c *Crawler) ScanProject(root string, onResult func(path string, res *breakdown.Result)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !c.accepts(d.Name()) {
			return nil
		}

		res, err := c.AnalyzeFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}
		onResult(path, res)
		return nil
	})
}

// AnalyzeFile parses one source file and runs a fresh breakdown session.
func (c *Crawler) AnalyzeFile(path string) (*breakdown.Result, error) {
	root, err := c.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	session := breakdown.NewSession(
		breakdown.NewEngine(c.vocab),
		uigraph.NewBuilder(c.vocab),
	)
	return session.Analyze(root, path)
}

func (c *Crawler) accepts(name string) bool {
	ext := filepath.Ext(name)
	for _, accepted := range c.parser.Extensions() {
		if ext == accepted {
			return true
		}
	}
	return false
}
