// Package shellscan parses shell commands into an AST and extracts the
// pipeline structure the regex catalogs cannot see: which executables
// feed which, with quoting resolved.
package shellscan

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// downloaders fetch remote content to stdout.
var downloaders = map[string]bool{
	"curl":  true,
	"wget":  true,
	"fetch": true,
	"ftp":   true,
}

// interpreters execute whatever arrives on stdin.
var interpreters = map[string]bool{
	"sh":      true,
	"bash":    true,
	"zsh":     true,
	"dash":    true,
	"ksh":     true,
	"fish":    true,
	"python":  true,
	"python3": true,
	"perl":    true,
	"ruby":    true,
	"node":    true,
}

// Pipeline is one parsed pipe chain: the base command of each stage, in
// order, with quotes resolved (so w'ge't is seen as wget).
type Pipeline []string

// Pipelines extracts every pipe chain from a command. A command that
// fails to parse yields nil: the caller's regex rules remain the only
// line of defense, and evaluation degrades rather than erroring.
func Pipelines(command string) []Pipeline {
	if command == "" {
		return nil
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil
	}

	var chains []Pipeline
	syntax.Walk(file, func(node syntax.Node) bool {
		bin, ok := node.(*syntax.BinaryCmd)
		if !ok || (bin.Op != syntax.Pipe && bin.Op != syntax.PipeAll) {
			return true
		}
		if chain := flattenPipe(bin); len(chain) > 1 {
			chains = append(chains, chain)
		}
		// flattenPipe already covered nested pipe nodes under this one.
		return false
	})
	return chains
}

// PipesDownloadToInterpreter reports whether any pipeline stage fetches
// remote content and a later stage hands it to a shell or script
// interpreter. sudo and env prefixes are stripped before classifying.
func PipesDownloadToInterpreter(command string) bool {
	for _, chain := range Pipelines(command) {
		sawDownload := false
		for _, cmd := range chain {
			if downloaders[cmd] {
				sawDownload = true
				continue
			}
			if sawDownload && interpreters[cmd] {
				return true
			}
		}
	}
	return false
}

func flattenPipe(bin *syntax.BinaryCmd) Pipeline {
	var chain Pipeline
	var walkSide func(stmt *syntax.Stmt)
	walkSide = func(stmt *syntax.Stmt) {
		if stmt == nil || stmt.Cmd == nil {
			return
		}
		switch cmd := stmt.Cmd.(type) {
		case *syntax.BinaryCmd:
			if cmd.Op == syntax.Pipe || cmd.Op == syntax.PipeAll {
				walkSide(cmd.X)
				walkSide(cmd.Y)
				return
			}
		case *syntax.CallExpr:
			if name := baseCommand(cmd); name != "" {
				chain = append(chain, name)
			}
			return
		}
	}
	walkSide(bin.X)
	walkSide(bin.Y)
	return chain
}

// baseCommand resolves the executable name of a simple command,
// skipping sudo/env prefixes and stripping any directory path.
func baseCommand(call *syntax.CallExpr) string {
	for _, arg := range call.Args {
		word := resolveWord(arg)
		if word == "" || strings.Contains(word, "=") {
			continue
		}
		if word == "sudo" || word == "env" || strings.HasPrefix(word, "-") {
			continue
		}
		if i := strings.LastIndexByte(word, '/'); i >= 0 {
			word = word[i+1:]
		}
		return word
	}
	return ""
}

// resolveWord concatenates a word's literal and quoted parts, defeating
// quote-splitting tricks like w'ge't. Words containing expansions the
// parser cannot resolve statically yield what was resolved so far.
func resolveWord(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dp := range p.Parts {
				if lit, ok := dp.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					return sb.String()
				}
			}
		default:
			return sb.String()
		}
	}
	return sb.String()
}
