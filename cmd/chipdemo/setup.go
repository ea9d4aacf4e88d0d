package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ruminaider/chipedit/internal/democfg"
)

// runSetup asks for the initial configuration on first run.
func runSetup() (democfg.Config, error) {
	cfg := democfg.Default()
	var tags string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Separator").
				Description("Typed text splits into tags on this string").
				Value(&cfg.Separator).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("separator cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Initial tags").
				Description("Separated by the separator above; leave empty to start blank").
				Value(&tags),
			huh.NewConfirm().
				Title("Draw a frame around the editor?").
				Value(&cfg.Frame),
		),
	).Run()
	if err != nil {
		return democfg.Config{}, err
	}

	for _, t := range strings.Split(tags, cfg.Separator) {
		t = strings.TrimSpace(t)
		if t != "" {
			cfg.Tags = append(cfg.Tags, t)
		}
	}
	return cfg, nil
}
