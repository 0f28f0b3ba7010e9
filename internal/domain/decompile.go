package domain

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Markers searched for in the decoded scan surface
const (
	EntryPointMarker  = "public static void main"
	ConstructorMarker = "<init>"
)

var (
	methodMarker = regexp.MustCompile(`Method (\w+)`)
	fieldMarker  = regexp.MustCompile(`Field (\w+)`)

	// names that belong to the entry point and constructor stubs
	reservedMethodNames = map[string]bool{
		"main": true,
		"init": true,
	}
)

const indent = "    "

// ScanSurface decodes buf as UTF-8, replacing invalid sequences with U+FFFD.
// The result is only searched for markers; it is not meaningful source.
func ScanSurface(buf []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(buf)
	if err != nil {
		return strings.ToValidUTF8(string(buf), "\uFFFD")
	}
	return string(out)
}

// DecompileStats counts what a Decompile call emitted
type DecompileStats struct {
	HasMain        bool
	HasConstructor bool
	Methods        []string // one entry per emitted stub, in order
	Fields         []string // one entry per emitted field, in order
}

// ScanMarkers runs the marker scan without producing text.
// Method and field occurrences are not deduplicated.
func ScanMarkers(surface string) DecompileStats {
	stats := DecompileStats{
		HasMain:        strings.Contains(surface, EntryPointMarker),
		HasConstructor: strings.Contains(surface, ConstructorMarker),
	}
	for _, m := range methodMarker.FindAllStringSubmatch(surface, -1) {
		if reservedMethodNames[m[1]] {
			continue
		}
		stats.Methods = append(stats.Methods, m[1])
	}
	for _, m := range fieldMarker.FindAllStringSubmatch(surface, -1) {
		stats.Fields = append(stats.Fields, m[1])
	}
	return stats
}

// Decompile synthesizes a class skeleton from the markers found in buf.
// It never fails; callers validate buf with ValidateClassFile first.
func Decompile(buf []byte, displayName string) string {
	className := ClassName(displayName)
	stats := ScanMarkers(ScanSurface(buf))

	var blocks []string
	if stats.HasMain {
		blocks = append(blocks, method("public static void main(String[] args)", "// Entry point"))
	}
	if stats.HasConstructor {
		blocks = append(blocks, method(fmt.Sprintf("public %s()", className), "super();"))
	}
	for _, name := range stats.Methods {
		blocks = append(blocks, method(fmt.Sprintf("public void %s()", name), "// Method: "+name))
	}
	if len(stats.Fields) > 0 {
		var fields []string
		for _, name := range stats.Fields {
			fields = append(fields, fmt.Sprintf("%sprivate Object %s;", indent, name))
		}
		blocks = append(blocks, strings.Join(fields, "\n"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Decompiled from: %s\n", displayName)
	b.WriteString("// Simplified view: generated from marker scan, not full bytecode analysis\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "public class %s {\n", className)
	for _, block := range blocks {
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func method(signature, body string) string {
	return fmt.Sprintf("%s%s {\n%s%s%s\n%s}", indent, signature, indent, indent, body, indent)
}
