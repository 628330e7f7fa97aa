// Package jsliteral formats Go values as JavaScript source fragments for the
// generated blocks.
package jsliteral

import (
	"math"
	"strconv"
	"strings"
)

const placeholder = "None"

var singleQuoted = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", " ",
)

// Escape prepares free text for a single-quoted string literal. The
// spreadsheet placeholder "None" maps to the empty string.
func Escape(s string) string {
	if s == "" || s == placeholder {
		return ""
	}
	return strings.TrimSpace(singleQuoted.Replace(s))
}

// Quote wraps the escaped text in single quotes.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}

// Array renders a list of strings as a single-quoted array literal. Items
// that escape to nothing are dropped.
func Array(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		escaped := Escape(item)
		if escaped == "" {
			continue
		}
		quoted = append(quoted, "'"+escaped+"'")
	}
	if len(quoted) == 0 {
		return "[]"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Number renders a float as an integer literal when it has no fractional part
// and as the shortest decimal form otherwise.
func Number(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var templateText = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", `\${`,
	"\r\n", " ",
	"\n", " ",
)

// TemplateText makes free text safe inside a backtick template literal and
// keeps it on a single line.
func TemplateText(s string) string {
	return templateText.Replace(s)
}
