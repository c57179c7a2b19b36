package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintL1Title opens a screen: a blank line, then the title on a cyan bar.
func PrintL1Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	pterm.Println()
	style.Println(" " + fmt.Sprintf(format, a...) + " ")
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

func Separator() {
	pterm.Println(pterm.Gray("────────────────────────────────────────"))
}
