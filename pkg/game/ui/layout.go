package ui

import (
	"strings"

	"alphapoint/pkg/game/renderer"
)

// DefaultWidth is the UI width used when the host gives none
const DefaultWidth = 60

func separator(width int) string {
	return renderer.Mark(renderer.FuncSubtle, strings.Repeat("-", width))
}

// screen joins the non-empty elements with blank lines
func screen(elements ...string) string {
	var kept []string
	for _, e := range elements {
		if e != "" {
			kept = append(kept, e)
		}
	}
	return strings.Join(kept, "\n\n") + "\n"
}

// wrap word-wraps every paragraph of s to width
func wrap(s string, width int) string {
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		if len(paragraph) <= width {
			out = append(out, paragraph)
			continue
		}
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// markLines applies a markup function to each line separately
func markLines(function, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = renderer.Mark(function, l)
		}
	}
	return strings.Join(lines, "\n")
}

// option formats a numbered entry, continuation lines indented under the text
func option(key, text string, width int) string {
	prefix := renderer.Mark(renderer.FuncAction, key) + ". "
	pad := strings.Repeat(" ", len(key)+2)
	body := wrap(text, width-len(pad))
	return prefix + strings.ReplaceAll(body, "\n", "\n"+pad)
}
