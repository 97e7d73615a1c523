package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmadeira/todoapp/client"
	"github.com/jfmadeira/todoapp/tui"
)

type config struct {
	APIURL string `toml:"api_url"`
}

// loadConfig resolves the API base URL: TOML file, then TODO_API_URL,
// then the local default.
func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("TODO_API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:8080"
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(client.New(cfg.APIURL)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
