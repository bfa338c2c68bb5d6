package openspec

import (
	"errors"
	"strings"
)

// ErrNoToolsSelected is returned when a custom selection has no usable tool
// names after trimming.
var ErrNoToolsSelected = errors.New("no tools selected")

// Mode chooses which optional sub-tools `openspec init` should configure.
type Mode int

const (
	ToolsAll Mode = iota
	ToolsCustom
	ToolsNone
)

// Selection is a tool-selection mode plus, for ToolsCustom, the chosen tool
// names. All and None ignore the Tools slice.
type Selection struct {
	Mode  Mode
	Tools []string
}

// ToolsArg renders the selection as the value for the init --tools flag:
// "all", "none", or a comma-separated list of the surviving custom names in
// input order.
func (s Selection) ToolsArg() (string, error) {
	switch s.Mode {
	case ToolsAll:
		return "all", nil
	case ToolsNone:
		return "none", nil
	}

	names := make([]string, 0, len(s.Tools))
	for _, tool := range s.Tools {
		if tool = strings.TrimSpace(tool); tool != "" {
			names = append(names, tool)
		}
	}
	if len(names) == 0 {
		return "", ErrNoToolsSelected
	}
	return strings.Join(names, ","), nil
}
