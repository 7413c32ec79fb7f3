// Package main provides a demo program for the tea-toast widget.
//
// It shows every toast kind, a custom-rendered kind, mouse dismissal and
// the progress-bar countdown. Appearance is configurable with a YAML
// file:
//
//	toast-demo -config demo.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	toast "github.com/Ultrajackstr/tea-toast"
)

// kindClipboard demonstrates an application-defined toast kind.
const kindClipboard = toast.KindCustom + 1

var (
	helpStyle = lipgloss.NewStyle().Faint(true)

	clipboardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#c6a0f6")).
			Padding(0, 1)
)

type model struct {
	toasts   toast.Model
	duration time.Duration
	width    int
	height   int
}

func newModel(cfg *Config) (model, error) {
	toasts, err := cfg.Build()
	if err != nil {
		return model{}, err
	}
	duration, err := cfg.ParseDuration()
	if err != nil {
		return model{}, err
	}

	toasts.CustomContents(kindClipboard, func(t *toast.Toast) string {
		return clipboardStyle.Render("📋 " + t.Text)
	})

	return model{
		toasts:   toast.NewModel(toasts),
		duration: duration,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "i":
			m.toasts, cmd = m.toasts.Info("Something happened", m.duration)
			return m, cmd
		case "w":
			m.toasts, cmd = m.toasts.Warning("This may be a problem", m.duration)
			return m, cmd
		case "e":
			m.toasts, cmd = m.toasts.Error("Something went wrong", m.duration)
			return m, cmd
		case "s":
			m.toasts, cmd = m.toasts.Success("It worked", m.duration)
			return m, cmd
		case "c":
			m.toasts, cmd = m.toasts.Push(toast.Toast{
				Kind:    kindClipboard,
				Text:    "Copied to clipboard",
				Options: toast.WithDuration(m.duration),
			})
			return m, cmd
		case "n":
			// Never expires; click it to dismiss.
			m.toasts, cmd = m.toasts.Push(toast.Toast{
				Kind:    toast.KindInfo,
				Text:    "Click me to dismiss",
				Options: toast.Options{ShowIcon: true},
			})
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	m.toasts, cmd = m.toasts.Update(msg)
	return m, cmd
}

func (m model) View() string {
	help := strings.Join([]string{
		"i  info toast",
		"w  warning toast",
		"e  error toast",
		"s  success toast",
		"c  custom toast",
		"n  sticky toast (click to dismiss)",
		"q  quit",
	}, "\n")

	view := lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		helpStyle.Render(help),
	)

	return m.toasts.Overlay(view)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML appearance config")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // clicking a toast dismisses it
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
