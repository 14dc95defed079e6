package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rouge-editor/rouge/internal/config"
	"github.com/rouge-editor/rouge/internal/editor"
	"github.com/rouge-editor/rouge/internal/log"
	"github.com/rouge-editor/rouge/internal/textbuf"
	"github.com/rouge-editor/rouge/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the buffer.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "rouge <file>",
	Short:   "A modal terminal text editor",
	Long:    `A modal terminal text editor with soft-wrapped lines, relative line numbers and vim-style normal/insert modes.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runEditor,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/rouge/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write structured debug logs to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.gutter_width", defaults.UI.GutterWidth)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	viper.SetDefault("log_path", defaults.LogPath)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "rouge"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "rouge", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runEditor(cmd *cobra.Command, args []string) error {
	if cfg.Debug || os.Getenv("ROUGE_DEBUG") == "1" {
		cleanup, err := log.Init(cfg.LogPath)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
	}

	path := args[0]
	buf, exists, err := openBuffer(path)
	if err != nil {
		return err
	}

	ed, err := editor.New(buf, cfg, 80, 24)
	if err != nil {
		return fmt.Errorf("initializing editor: %w", err)
	}

	var w *watcher.Watcher
	if cfg.Watch.Enabled && exists {
		w, err = watcher.New(watcher.Config{
			Path:        path,
			DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		})
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Failed to create watcher", err, "path", path)
		} else if ch, startErr := w.Start(); startErr != nil {
			log.ErrorErr(log.CatWatcher, "Failed to start watcher", startErr, "path", path)
		} else {
			ed.WatchChanges(ch)
		}
	}

	p := tea.NewProgram(ed, tea.WithAltScreen())
	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// openBuffer reads the file into a buffer. A file that doesn't exist yet
// starts as an empty buffer and is never created on disk.
func openBuffer(path string) (*textbuf.Buffer, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatEditor, "Opening new file", "path", path)
		return textbuf.NewFromString(""), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := textbuf.New(f)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return buf, true, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
