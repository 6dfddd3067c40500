package gradle

import (
	"regexp"
	"strings"
)

var (
	rootNameRe   = regexp.MustCompile(`rootProject\.name\s*=\s*["']([^"']+)["']`)
	includeRe    = regexp.MustCompile(`^\s*include\b`)
	quotedRe     = regexp.MustCompile(`["']([^"']+)["']`)
	projectRefRe = regexp.MustCompile(`project\(\s*(?:path\s*[:=]\s*)?["'](:[^"']*)["']`)
	toolchainRe  = regexp.MustCompile(`jvmToolchain\(\s*(\d+)\s*\)`)
	kotlinJvmRe  = regexp.MustCompile(`(?:kotlin\(\s*["']jvm["']\s*\)|id\s*\(?\s*["']org\.jetbrains\.kotlin\.jvm["']\s*\)?)\s*version\s*["']([^"']+)["']`)
)

// settings is what a settings script declares.
type settings struct {
	rootName string
	// includes are project paths in declaration order, e.g. ":app", ":lib:core".
	includes []string
	// dynamic is set when an include could not be read statically.
	dynamic bool
}

// parseSettings extracts the root project name and included project paths.
// Line comments are ignored; includes without string literals mark the
// settings as dynamic.
func parseSettings(src string) settings {
	var s settings
	if m := rootNameRe.FindStringSubmatch(src); m != nil {
		s.rootName = m[1]
	}

	seen := make(map[string]bool)
	for _, stmt := range includeStatements(src) {
		literals := quotedRe.FindAllStringSubmatch(stmt, -1)
		if len(literals) == 0 {
			s.dynamic = true
			continue
		}
		for _, lit := range literals {
			path := normalizeProjectPath(lit[1])
			if !seen[path] {
				seen[path] = true
				s.includes = append(s.includes, path)
			}
		}
	}
	return s
}

// includeStatements returns the text of every include statement, joining
// parenthesized argument lists that span several lines.
func includeStatements(src string) []string {
	var stmts []string
	var current strings.Builder
	open := false
	for _, line := range strings.Split(src, "\n") {
		line = stripLineComment(line)
		if !open {
			if !includeRe.MatchString(line) {
				continue
			}
			current.Reset()
		}
		current.WriteString(line)
		current.WriteByte(' ')

		depth := strings.Count(current.String(), "(") - strings.Count(current.String(), ")")
		open = depth > 0
		if !open {
			stmts = append(stmts, current.String())
		}
	}
	if open {
		stmts = append(stmts, current.String())
	}
	return stmts
}

// buildScript is what a project build script declares.
type buildScript struct {
	projectDeps   []string
	javaVersion   string
	kotlinVersion string
}

func parseBuildScript(src string) buildScript {
	var b buildScript
	seen := make(map[string]bool)
	for _, line := range strings.Split(src, "\n") {
		line = stripLineComment(line)
		for _, m := range projectRefRe.FindAllStringSubmatch(line, -1) {
			path := normalizeProjectPath(m[1])
			if !seen[path] {
				seen[path] = true
				b.projectDeps = append(b.projectDeps, path)
			}
		}
	}
	if m := toolchainRe.FindStringSubmatch(src); m != nil {
		b.javaVersion = m[1]
	}
	if m := kotlinJvmRe.FindStringSubmatch(src); m != nil {
		b.kotlinVersion = m[1]
	}
	return b
}

// normalizeProjectPath turns "app", ":app" or "app:core" into the ":app" form.
func normalizeProjectPath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, ":") {
		p = ":" + p
	}
	return p
}

// projectDir maps a project path to its directory relative to the root.
func projectDir(path string) string {
	return strings.ReplaceAll(strings.TrimPrefix(path, ":"), ":", "/")
}

func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		// Keep URLs such as "https://..." inside string literals.
		if strings.Count(line[:i], `"`)%2 == 0 && strings.Count(line[:i], `'`)%2 == 0 {
			return line[:i]
		}
	}
	return line
}
