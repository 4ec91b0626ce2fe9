package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┬┌─┐┌─┐┬  ┌─┐
  ├┬┘│├─┘├─┘│  ├┤
  ┴└─┴┴  ┴  ┴─┘└─┘
`

var (
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DCFFF")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BB9AF7")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AF68"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))
	labelStyle   = lipgloss.NewStyle().Width(12)
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ripple",
		Short: "Reactive dataflow and incremental DOM reconciliation",
		Long: `ripple runs reactive documents against a headless DOM.

Vars and Views describe state, documents describe the tree built
from them, and a time-sliced scheduler keeps the tree in sync with
one reconciliation pass per batch of changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to ripple.toml")

	rootCmd.AddCommand(
		demoCmd(&configPath),
		benchCmd(&configPath),
		serveCmd(&configPath),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errorMsg("%s", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(bannerStyle.Render(banner))
	fmt.Println()
}

func header(format string, args ...any) {
	fmt.Println(headerStyle.Render(fmt.Sprintf(format, args...)))
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

func field(label string, value any) {
	fmt.Printf("  %s%v\n", labelStyle.Render(label+":"), value)
}

func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", warnStyle.Render("⚠"), fmt.Sprintf(format, args...))
}

func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗"), fmt.Sprintf(format, args...))
}
