package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kindlychung/TornadoFX-Suite/internal/breakdown"
)

// TestFXGenerator emits Kotlin test-source stubs from the breakdown IR: one
// presence test per detected UI control plus a scaffold per analyzed method.
type TestFXGenerator struct{}

func NewTestFXGenerator() *TestFXGenerator {
	return &TestFXGenerator{}
}

// Generate writes one <Class>Test.kt per analyzed class into outputDir.
func (g *TestFXGenerator) Generate(res *breakdown.Result, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", outputDir, err)
	}

	// Deterministic file order regardless of map iteration.
	names := make([]string, 0, len(res.ClassBreakdowns))
	for name := range res.ClassBreakdowns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := g.RenderClass(name, res)
		path := filepath.Join(outputDir, name+"Test.kt")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// RenderClass builds the test source for one class.
func (g *TestFXGenerator) RenderClass(name string, res *breakdown.Result) string {
	cb := res.ClassBreakdowns[name]
	var sb strings.Builder

	sb.WriteString("import javafx.scene.Scene\n")
	sb.WriteString("import javafx.stage.Stage\n")
	sb.WriteString("import org.junit.jupiter.api.Test\n")
	sb.WriteString("import org.testfx.framework.junit5.ApplicationTest\n")
	if imp, ok := res.ViewImports[name]; ok && imp != "" {
		sb.WriteString("import " + imp + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("class %sTest : ApplicationTest() {\n\n", name))
	sb.WriteString(fmt.Sprintf("    private val view = %s()\n\n", name))
	sb.WriteString("    override fun start(stage: Stage) {\n")
	sb.WriteString("        stage.scene = Scene(view.root)\n")
	sb.WriteString("        stage.show()\n")
	sb.WriteString("    }\n")

	for _, control := range res.DetectedUIControls[name] {
		sb.WriteString("\n    @Test\n")
		sb.WriteString(fmt.Sprintf("    fun `%s %s is present`() {\n", control.Type, control.Label))
		sb.WriteString(fmt.Sprintf("        // TODO verify %s labelled %q\n", control.Type, control.Label))
		sb.WriteString("    }\n")
	}

	if cb != nil {
		for _, method := range cb.Methods {
			sb.WriteString("\n    @Test\n")
			sb.WriteString(fmt.Sprintf("    fun `%s behaves`() {\n", method.Name))
			for _, stmt := range method.Statements {
				sb.WriteString(fmt.Sprintf("        // exercises: %s\n", stmt.Summary))
			}
			sb.WriteString(fmt.Sprintf("        view.%s(%s)\n", method.Name, placeholderArgs(method)))
			sb.WriteString("    }\n")
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// placeholderArgs renders TODO placeholders matching the method's arity.
func placeholderArgs(m breakdown.Method) string {
	if len(m.Params) == 0 {
		return ""
	}
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = "/* " + p.Name + " */"
	}
	return strings.Join(parts, ", ")
}
