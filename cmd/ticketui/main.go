package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"helpdesk/cmd/ticketui/ui"
)

func main() {
	api := flag.String("api", "http://127.0.0.1:8080", "Backend base URL")
	flag.Parse()

	session := ui.NewSession(strings.TrimRight(*api, "/"))
	p := tea.NewProgram(ui.NewRootModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ticketui: %v\n", err)
		os.Exit(1)
	}
}
