package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jesspatton/lazyfiles/config"
	"github.com/jesspatton/lazyfiles/explorer"
	"github.com/jesspatton/lazyfiles/logging"
	"github.com/jesspatton/lazyfiles/ui"
)

var (
	rootDir        string
	configPath     string
	logFile        string
	debug          bool
	noFlattenFile  bool
	noFlattenChild bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lazyfiles",
		Short: "A terminal file explorer with folder hiding and tree compaction",
		Long: `lazyfiles presents a compacted view of a workspace: folders you hide
disappear from the tree, folders holding a single file collapse into
one "dir/file" row, and chains of single-child folders collapse into
one "a/b/c" row. Settings persist in ` + config.FileName + ` at the
workspace root.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().StringVarP(&rootDir, "root", "r", "", "Workspace root (default: current directory)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file path (default: <root>/"+config.FileName+")")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write diagnostics to this file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log at debug level")
	cmd.Flags().BoolVar(&noFlattenFile, "no-flatten-single-file", false, "Disable single-file folder collapsing for this session")
	cmd.Flags().BoolVar(&noFlattenChild, "no-flatten-single-child", false, "Disable folder chain collapsing for this session")

	return cmd
}

func run() error {
	root := rootDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	settings := configPath
	if settings == "" {
		settings = filepath.Join(root, config.FileName)
	}

	log := logging.New(logFile, debug)

	store := config.NewStore(settings)
	var offFile, offChild *bool
	off := false
	if noFlattenFile {
		offFile = &off
	}
	if noFlattenChild {
		offChild = &off
	}
	store.OverrideFlatten(offFile, offChild)

	lister := explorer.NewLister(root, log)

	p := tea.NewProgram(ui.NewModel(lister, store, log), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
