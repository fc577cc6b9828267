// Dev script: lints message conventions across the validator.
//
// Two registers exist and must not mix. Diagnostics (diag.Errorf,
// diag.Warningf) are report bullets shown to store maintainers and
// start with a capital letter, a quoted field name, or a manifest key.
// Go errors (fmt.Errorf, errors.New) follow the standard library
// convention and start lowercase, except wrapped errors and the few
// report-facing fatal strings.
//
// Usage: go run scripts/lint_messages.go [threshold]
package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// ConventionIssue reports one message that breaks its register's rules.
type ConventionIssue struct {
	File    string
	Line    int
	Message string
	Issue   string
}

// FileStats tracks message counts for a single file.
type FileStats struct {
	Total     int
	Compliant int
	Issues    []ConventionIssue
}

var (
	// Diagnostics may start with a quoted name or a lowercase manifest
	// key instead of a capital letter.
	diagLowercaseAllowed = regexp.MustCompile(`^('|"|mod_count\b|non-zip\b)`)

	// Go error strings that legitimately start uppercase: wrapped
	// context that begins with an identifier, and the report-facing
	// fatal messages main prints verbatim.
	errUppercaseAllowed = regexp.MustCompile(`^(Error: |JSON syntax error|URL |GITHUB_|STORELINT_)`)
)

func main() {
	threshold := 100
	if len(os.Args) > 1 {
		if _, err := fmt.Sscanf(os.Args[1], "%d", &threshold); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid threshold value '%s', using default 100%%\n", os.Args[1])
			threshold = 100
		}
	}

	fmt.Println("🔍 Message Convention Linter")
	fmt.Println()

	allStats := make(map[string]*FileStats)
	totalMessages := 0
	totalCompliant := 0

	err := filepath.Walk("pkg", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		stats := analyzeFile(path)
		if stats.Total > 0 {
			allStats[path] = stats
			totalMessages += stats.Total
			totalCompliant += stats.Compliant
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking pkg/: %v\n", err)
		os.Exit(1)
	}

	sortedFiles := make([]string, 0, len(allStats))
	for file := range allStats {
		sortedFiles = append(sortedFiles, file)
	}
	sort.Strings(sortedFiles)

	issueCount := 0
	for _, file := range sortedFiles {
		stats := allStats[file]
		if len(stats.Issues) == 0 {
			fmt.Printf("✓ %s: %d/%d compliant\n", file, stats.Compliant, stats.Total)
			continue
		}
		fmt.Printf("✗ %s: %d/%d compliant\n", file, stats.Compliant, stats.Total)
		for _, issue := range stats.Issues {
			fmt.Printf("  - Line %d: %s: %q\n", issue.Line, issue.Issue, issue.Message)
		}
		issueCount += len(stats.Issues)
	}

	fmt.Println()
	fmt.Println("📊 Summary:")
	fmt.Printf("  Total messages: %d\n", totalMessages)
	fmt.Printf("  Compliant: %d\n", totalCompliant)
	fmt.Printf("  Issues: %d\n", issueCount)
	fmt.Println()

	compliance := (totalCompliant * 100) / max(totalMessages, 1)
	if compliance >= threshold {
		fmt.Printf("✅ Meets convention threshold (%d%%)\n", threshold)
		os.Exit(0)
	}
	fmt.Printf("❌ Below convention threshold (%d%% < %d%%)\n", compliance, threshold)
	os.Exit(1)
}

func analyzeFile(path string) *FileStats {
	stats := &FileStats{}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return stats
	}

	ast.Inspect(node, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		fun, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}

		message, ok := literalString(call.Args[0])
		if !ok {
			return true
		}

		recv := receiverName(fun)
		switch {
		case fun.Sel.Name == "Errorf" && recv == "diag",
			fun.Sel.Name == "Warningf" && recv == "diag":
			stats.record(checkDiagnostic(message), path, fset.Position(call.Pos()).Line, message)
		case fun.Sel.Name == "Errorf" && recv == "fmt",
			fun.Sel.Name == "New" && recv == "errors":
			stats.record(checkGoError(message), path, fset.Position(call.Pos()).Line, message)
		}
		return true
	})

	return stats
}

func (s *FileStats) record(issue string, file string, line int, message string) {
	s.Total++
	if issue == "" {
		s.Compliant++
		return
	}
	s.Issues = append(s.Issues, ConventionIssue{File: file, Line: line, Message: message, Issue: issue})
}

// checkDiagnostic validates a report-bullet message. The leading
// "%s: " prefix slot (the Mod #n tag) is stripped before checking.
func checkDiagnostic(message string) string {
	body := strings.TrimPrefix(message, "%s: ")
	if body == "" {
		return "empty diagnostic message"
	}
	first := rune(body[0])
	if unicode.IsUpper(first) || diagLowercaseAllowed.MatchString(body) {
		return ""
	}
	return "diagnostic should start with a capital, a quoted name, or a manifest key"
}

// checkGoError validates a Go error string against the lowercase
// convention.
func checkGoError(message string) string {
	if message == "" {
		return "empty error message"
	}
	first := rune(message[0])
	if !unicode.IsUpper(first) || errUppercaseAllowed.MatchString(message) {
		return ""
	}
	return "Go errors should start lowercase"
}

func literalString(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	value := lit.Value[1 : len(lit.Value)-1]
	value = strings.ReplaceAll(value, `\"`, `"`)
	return value, true
}

func receiverName(fun *ast.SelectorExpr) string {
	ident, ok := fun.X.(*ast.Ident)
	if !ok {
		return ""
	}
	return ident.Name
}
