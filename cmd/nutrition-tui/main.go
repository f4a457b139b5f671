// Terminal version of the daily nutrition form.
// Usage: go run ./cmd/nutrition-tui
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error al ejecutar el formulario: %v\n", err)
		os.Exit(1)
	}
}
