package openspec

import (
	"errors"
	"strings"
)

// ErrToolsParse is returned when the supported-tool list cannot be
// extracted from the CLI's help text.
var ErrToolsParse = errors.New("could not parse supported tools from help text")

// toolListMarker introduces the comma-separated tool list in the init help
// text ("... as a comma-separated list of: claude, cline, ...").
const toolListMarker = "list of:"

var sectionHeaders = []string{"Usage:", "Arguments:", "Options:", "Commands:"}

// ParseSupportedTools extracts the tool names from `openspec init --help`
// output. The list starts on the marker line and may wrap onto following
// lines; it ends at a blank line, a bullet, or the next help section.
// Entries are trimmed and a single trailing period is stripped.
func ParseSupportedTools(help string) ([]string, error) {
	lines := strings.Split(help, "\n")

	var fragments []string
	found := false
	for i, line := range lines {
		idx := strings.Index(line, toolListMarker)
		if idx < 0 {
			continue
		}
		found = true
		if tail := strings.TrimSpace(line[idx+len(toolListMarker):]); tail != "" {
			fragments = append(fragments, tail)
		}
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if trimmed == "" || isBullet(trimmed) || isSectionHeader(trimmed) {
				break
			}
			fragments = append(fragments, trimmed)
		}
		break
	}
	if !found {
		return nil, ErrToolsParse
	}

	var tools []string
	for _, entry := range strings.Split(strings.Join(fragments, " "), ",") {
		entry = strings.TrimSpace(entry)
		entry = strings.TrimSuffix(entry, ".")
		if entry = strings.TrimSpace(entry); entry != "" {
			tools = append(tools, entry)
		}
	}
	if len(tools) == 0 {
		return nil, ErrToolsParse
	}
	return tools, nil
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
}

func isSectionHeader(line string) bool {
	for _, h := range sectionHeaders {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}
