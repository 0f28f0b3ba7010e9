package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplaySettings controls how synthesized code is presented.
// Settings never change what the decompiler scans for.
type DisplaySettings struct {
	ShowLineNumbers     bool `json:"showLineNumbers"`
	InlineSimpleMethods bool `json:"inlineSimpleMethods"`
	RemoveComments      bool `json:"removeComments"`
	SimplifyExpressions bool `json:"simplifyExpressions"`
}

// SettingKey names one DisplaySettings flag
type SettingKey string

const (
	SettingShowLineNumbers     SettingKey = "show_line_numbers"
	SettingInlineSimpleMethods SettingKey = "inline_simple_methods"
	SettingRemoveComments      SettingKey = "remove_comments"
	SettingSimplifyExpressions SettingKey = "simplify_expressions"
)

// SettingKeys lists every key in display order
var SettingKeys = []SettingKey{
	SettingShowLineNumbers,
	SettingInlineSimpleMethods,
	SettingRemoveComments,
	SettingSimplifyExpressions,
}

// Label returns a human readable name for the key
func (k SettingKey) Label() string {
	switch k {
	case SettingShowLineNumbers:
		return "Show line numbers"
	case SettingInlineSimpleMethods:
		return "Inline simple methods"
	case SettingRemoveComments:
		return "Remove comments"
	case SettingSimplifyExpressions:
		return "Simplify expressions"
	default:
		return string(k)
	}
}

// Description explains what the key does
func (k SettingKey) Description() string {
	switch k {
	case SettingShowLineNumbers:
		return "Number each line of the decompiled code"
	case SettingInlineSimpleMethods:
		return "Collapse single-statement methods onto one line"
	case SettingRemoveComments:
		return "Strip generated comments"
	case SettingSimplifyExpressions:
		return "Drop implicit super() calls and repeated blank lines"
	default:
		return ""
	}
}

// Get returns the value for key
func (s DisplaySettings) Get(key SettingKey) bool {
	switch key {
	case SettingShowLineNumbers:
		return s.ShowLineNumbers
	case SettingInlineSimpleMethods:
		return s.InlineSimpleMethods
	case SettingRemoveComments:
		return s.RemoveComments
	case SettingSimplifyExpressions:
		return s.SimplifyExpressions
	}
	return false
}

// With returns a copy with key set to value. Unknown keys are ignored.
func (s DisplaySettings) With(key SettingKey, value bool) DisplaySettings {
	switch key {
	case SettingShowLineNumbers:
		s.ShowLineNumbers = value
	case SettingInlineSimpleMethods:
		s.InlineSimpleMethods = value
	case SettingRemoveComments:
		s.RemoveComments = value
	case SettingSimplifyExpressions:
		s.SimplifyExpressions = value
	}
	return s
}

// ParseSettingKey validates a stored or user supplied key
func ParseSettingKey(raw string) (SettingKey, error) {
	for _, k := range SettingKeys {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown setting: %s", raw)
}

// Format applies the enabled post-processing steps to code. Steps run in a
// fixed order: comments, simplification, inlining, line numbers.
func (s DisplaySettings) Format(code string) string {
	if code == "" {
		return code
	}
	trailing := strings.HasSuffix(code, "\n")
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")

	if s.RemoveComments {
		lines = removeComments(lines)
	}
	if s.SimplifyExpressions {
		lines = simplify(lines)
	}
	if s.InlineSimpleMethods {
		lines = inlineMethods(lines)
	}
	if s.ShowLineNumbers {
		lines = numberLines(lines)
	}

	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// FormatForExport is Format without line numbers, for clipboard and files
func (s DisplaySettings) FormatForExport(code string) string {
	s.ShowLineNumbers = false
	return s.Format(code)
}

func removeComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		if i := strings.Index(line, " //"); i >= 0 {
			line = strings.TrimRight(line[:i], " \t")
		}
		// leading blank lines left behind by a removed header
		if len(out) == 0 && trimmed == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func simplify(lines []string) []string {
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "super();" {
			continue
		}
		if trimmed == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return out
}

// inlineMethods joins "sig {", one body line and "}" into a single line
func inlineMethods(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !isMethodOpen(line) {
			out = append(out, line)
			continue
		}
		// empty body
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "}" {
			out = append(out, line+"}")
			i++
			continue
		}
		if i+2 < len(lines) && strings.TrimSpace(lines[i+2]) == "}" {
			body := strings.TrimSpace(lines[i+1])
			if body != "" && !strings.HasSuffix(body, "{") && !strings.HasSuffix(body, "}") {
				if rest, ok := strings.CutPrefix(body, "//"); ok {
					body = "/* " + strings.TrimSpace(rest) + " */"
				}
				out = append(out, line+" "+body+" }")
				i += 2
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

func isMethodOpen(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasSuffix(trimmed, ") {") && !strings.HasPrefix(trimmed, "public class ")
}

func numberLines(lines []string) []string {
	width := len(strconv.Itoa(len(lines)))
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%*d | %s", width, i+1, line)
	}
	return out
}
