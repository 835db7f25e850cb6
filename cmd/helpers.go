package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/hypertrophy/hypertrophy/internal/models"
	"github.com/hypertrophy/hypertrophy/internal/storage"
)

// loadState opens the store and reads the current state blob.
func loadState() (*storage.Storage, *models.AppState, error) {
	st := storage.NewStorage()
	state, err := st.LoadState()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load state: %w", err)
	}
	return st, state, nil
}

// persist writes the full state back after a mutation.
func persist(st *storage.Storage, state *models.AppState) error {
	if err := st.SaveState(state); err != nil {
		return fmt.Errorf("Failed to save state: %w", err)
	}
	return nil
}

// confirm asks a yes/no question on stdin. Destructive actions never run
// without it unless the caller passed --yes.
func confirm(message string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", message)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func formatWeight(w *float64) string {
	if w == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fkg", *w)
}
