package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintTestList prints registered test names as a tree, in run order.
func PrintTestList(w io.Writer, names []string, noColor bool) {
	header := color.New(color.FgGreen)
	node := color.New(color.FgCyan)
	if noColor || !IsTerminal(w) {
		header.DisableColor()
		node.DisableColor()
	} else {
		header.EnableColor()
		node.EnableColor()
	}

	header.Fprintf(w, "Found %d test(s):\n\n", len(names))
	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}
		fmt.Fprintf(w, "%s%s\n", connector, node.Sprint(name))
	}
}
