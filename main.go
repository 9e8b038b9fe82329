package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"whitebox/app"
	"whitebox/config"
	"whitebox/inspect"
	"whitebox/log"
)

var (
	version     = "0.3.0"
	contentFlag string
	beforeFlag  string
	afterFlag   string
	noWatchFlag bool

	inspectWidth    int
	inspectHeight   int
	inspectPosition float64
	inspectText     bool
	inspectCopy     bool
	inspectStyles   bool

	rootCmd = &cobra.Command{
		Use:   "whitebox [content.md]",
		Short: "Whitebox - compare a space before and after, right in the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("whitebox needs an interactive terminal; use 'whitebox inspect' to render without one")
			}

			cfg := config.LoadConfig()
			return app.Run(ctx, cfg, runOptions(cfg, args))
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect [content.md]",
		Short: "Render one frame without a terminal and print its inspection snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			opts := runOptions(cfg, args)
			opts.Watch = false

			view, snap, err := app.RenderFrame(cfg, opts, lipgloss.ColorProfile(), inspectWidth, inspectHeight, inspectPosition)
			if err != nil {
				return err
			}

			var out string
			if inspectStyles {
				data, err := json.MarshalIndent(inspect.GetAllStyles(), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal styles: %w", err)
				}
				out = string(data)
			} else if inspectText {
				out = view + "\n\n" + snap.ToText()
			} else {
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal snapshot: %w", err)
				}
				out = string(data)
			}
			fmt.Println(out)

			if inspectCopy {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(os.Stderr, "copied to clipboard")
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.LogFile())
			fmt.Printf("Inspect: set %s=1 to write %s\n", inspect.EnvVar, filepath.Join(os.TempDir(), inspect.FileName))
			fmt.Printf("Styles: %s\n", strings.Join(inspect.ListRegisteredStyles(), ", "))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of whitebox",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("whitebox version %s\n", version)
		},
	}
)

// runOptions merges the flags over the configuration. A positional content
// file wins over --content.
func runOptions(cfg *config.Config, args []string) app.Options {
	opts := app.Options{
		ContentFile: cfg.ContentFile,
		Before:      beforeFlag,
		After:       afterFlag,
		Watch:       cfg.Watch && !noWatchFlag,
	}
	if contentFlag != "" {
		opts.ContentFile = contentFlag
	}
	if len(args) > 0 {
		opts.ContentFile = args[0]
	}
	return opts
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, inspectCmd} {
		c.Flags().StringVarP(&contentFlag, "content", "c", "",
			"Markdown page with front matter (title, subtitle, logo, before, after)")
		c.Flags().StringVar(&beforeFlag, "before", "", "Image shown left of the boundary")
		c.Flags().StringVar(&afterFlag, "after", "", "Image shown right of the boundary")
	}
	rootCmd.Flags().BoolVar(&noWatchFlag, "no-watch", false, "Do not reload when the page or its images change")

	inspectCmd.Flags().IntVar(&inspectWidth, "width", 80, "Terminal width to render at")
	inspectCmd.Flags().IntVar(&inspectHeight, "height", 24, "Terminal height to render at")
	inspectCmd.Flags().Float64Var(&inspectPosition, "position", 0.5, "Boundary position as a share of the slider width (0 to 1)")
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "Print the frame and a text summary instead of JSON")
	inspectCmd.Flags().BoolVar(&inspectCopy, "copy", false, "Also copy the output to the clipboard")
	inspectCmd.Flags().BoolVar(&inspectStyles, "styles", false, "Print the registered styles instead of the snapshot")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
