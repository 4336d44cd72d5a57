package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"geoplot/internal/config"
	"geoplot/internal/logging"
	"geoplot/internal/tui"
)

func main() {
	cfg := config.Load()
	logger, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg, logger, os.Args[1])
	} else {
		m = tui.New(cfg, logger)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Fatal().Err(err).Msg("program failed")
	}
}
