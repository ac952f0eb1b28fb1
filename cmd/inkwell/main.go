// Command inkwell is a terminal rich-text editor with a live preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/inkwell"
	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/store"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString("inkwell: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", config.DefaultPath(), "config file")
		draft      = flag.String("draft", "", "draft name (overrides config)")
		exportPath = flag.String("export", "", "HTML export path (overrides config)")
		storePath  = flag.String("store", "", "draft database path (overrides config)")
		noPreview  = flag.Bool("no-preview", false, "hide the preview pane")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(inkwell.Describe())
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	if path := os.Getenv("INKWELL_LOG"); path != "" {
		f, err := tea.LogToFile(path, "inkwell")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *draft != "" {
		cfg.Store.Draft = *draft
	}
	if *exportPath != "" {
		cfg.Export.Path = *exportPath
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	if *noPreview {
		cfg.ShowPreview = false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	initial, err := st.Load(ctx, cfg.Store.Draft)
	switch {
	case errors.Is(err, store.ErrNotFound):
		initial = nil
	case err != nil:
		return err
	}

	p := tea.NewProgram(newApp(cfg, st, initial), tea.WithAltScreen(), tea.WithMouseAllMotion())

	go watchConfig(ctx, p, *configPath)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func watchConfig(ctx context.Context, p *tea.Program, path string) {
	reload := func(cfg config.Config, err error) {
		p.Send(configMsg{cfg: cfg, err: err})
	}
	if err := config.Watch(ctx, path, config.DefaultDebounce, reload); err != nil {
		log.Printf("config watch disabled: %v", err)
	}
}
