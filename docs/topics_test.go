package docs

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code blocks with these info strings are run by TestCodeBlocks, in
// document order. A setup starts a fresh working directory, a run records its
// output for the next console block, and a check must simply succeed.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	bashCheck    = "bash check"
	consoleCheck = "console check"
)

var topicLine = regexp.MustCompile(`(?m)^\*\s+([^:]+):`)

// TestTopics checks the index lists exactly the embedded topics.
func TestTopics(t *testing.T) {
	readme, err := GetTopic(index)
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range topicLine.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	slices.Sort(listed)

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(listed, all) {
		t.Errorf("%s.md lists topics %q, want %q", index, listed, all)
	}
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) unexpected error: %v", topic, err)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	bin := t.TempDir()
	if out, err := exec.Command("go", "build", "-o", filepath.Join(bin, "fina"), "../fina/").CombinedOutput(); err != nil {
		t.Fatalf("cannot build fina: %v\n%s", err, out)
	}
	// Commands never reach the real APIs.
	env := append(os.Environ(),
		"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"FMP_API_KEY=test", "GEMINI_API_KEY=", "EODHD_API_KEY=", "FINA_SETTINGS=")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			var dir, output string
			for _, b := range codeBlocks(t, file) {
				if b.info == consoleCheck {
					if got, want := strings.TrimSpace(output), strings.TrimSpace(b.content); got != want {
						t.Errorf("%s:%d: got:\n%s\nwant:\n%s", file, b.line, got, want)
					}
					continue
				}
				if b.info == bashSetup || dir == "" {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.content)
				cmd.Dir, cmd.Env = dir, env
				out, err := cmd.CombinedOutput()
				if b.info == bashRun {
					output = string(out)
				}
				switch {
				case err == nil:
				case b.info == bashCheck:
					t.Errorf("%s:%d: %s failed: %v\n%s", file, b.line, b.info, err, out)
				default:
					t.Fatalf("%s:%d: %s failed: %v\n%s", file, b.line, b.info, err, out)
				}
			}
		})
	}
}

type codeBlock struct {
	info    string
	content string
	line    int
}

// codeBlocks returns the runnable fenced code blocks of a markdown file.
func codeBlocks(t *testing.T, file string) []codeBlock {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	var blocks []codeBlock
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		info := string(fcb.Info.Segment.Value(source))
		switch info {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			b.Write(seg.Value(source))
		}
		// goldmark has no positions, count the lines before the fence.
		line := strings.Count(string(source[:fcb.Info.Segment.Start]), "\n") + 1
		blocks = append(blocks, codeBlock{info: info, content: b.String(), line: line})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}
