package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	fmt.Printf("Initializing site in %s\n", root.Source)

	cfgPath := root.Config
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(root.Source, cfgPath)
	}
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}

	for _, dir := range []string{
		filepath.Join("content", "posts"),
		filepath.Join("content", "work"),
		filepath.Join("content", "devlogs"),
		filepath.Join("static", "css"),
	} {
		if err := os.MkdirAll(filepath.Join(root.Source, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	aboutPath := filepath.Join(root.Source, "content", "about.md")
	if _, err := os.Stat(aboutPath); os.IsNotExist(err) {
		if err := os.WriteFile(aboutPath, []byte("# About\n\nTell your readers about yourself.\n"), 0o644); err != nil {
			return fmt.Errorf("write about page: %w", err)
		}
	}

	fmt.Println("initialized successfully")
	return nil
}
