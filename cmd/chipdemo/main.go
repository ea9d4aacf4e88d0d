package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ruminaider/chipedit"
	"github.com/ruminaider/chipedit/internal/democfg"
)

var version = "0.1.0"

var (
	cfgPath string
	sepFlag string
)

var rootCmd = &cobra.Command{
	Use:   "chipdemo",
	Short: "Interactive demo of the chipedit widget",
	Long:  "chipdemo runs a terminal tag editor built on the chipedit component. Edited tags are printed on exit and saved back to the config file.",
	RunE:  runDemo,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chipdemo %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().StringVar(&cfgPath, "config", defaultConfigPath(), "Path to the demo config file")
	rootCmd.Flags().StringVar(&sepFlag, "separator", "", "Override the configured separator")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chipdemo.yaml"
	}
	return filepath.Join(home, ".config", "chipdemo", "config.yaml")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := democfg.Load(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg, err = runSetup()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
		if err := democfg.Save(cfgPath, cfg); err != nil {
			return err
		}
	case err != nil:
		return err
	}
	if sepFlag != "" {
		cfg.Separator = sepFlag
	}

	opts := []chipedit.Option{
		chipedit.WithTexts(cfg.Tags...),
		chipedit.WithFrame(cfg.Frame),
		chipedit.WithPlaceholder(cfg.Placeholder),
	}
	if cfg.KeepEmpty {
		opts = append(opts, chipedit.WithKeepEmpty())
	}
	if cfg.Icon != "" {
		opts = append(opts, chipedit.WithIcon(cfg.Icon))
	}
	editor, err := chipedit.New(cfg.Separator, opts...)
	if err != nil {
		return fmt.Errorf("building editor: %w", err)
	}

	p := tea.NewProgram(newApp(editor), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running demo: %w", err)
	}

	a := final.(app)
	fmt.Println(a.editor.Value())

	cfg.Tags = a.editor.Texts()
	return democfg.Save(cfgPath, cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
