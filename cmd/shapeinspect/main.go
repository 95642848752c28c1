// Command shapeinspect is an interactive terminal browser for the style
// catalog.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/preview"
	"github.com/gogpu/shapestyle/state"
)

func main() {
	var (
		images  = flag.String("image", "", "directory with waimea6, puyo and nasa images")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if err := run(*images, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "shapeinspect: %v\n", err)
		os.Exit(1)
	}
}

func run(images, logFile string) error {
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		shapestyle.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	samples := preview.NewSamples()
	if images != "" {
		if err := samples.LoadDir(images); err != nil {
			return err
		}
	}
	pattern, err := samples.Image(shapestyle.ImageWaimea)
	if err != nil {
		return err
	}
	resolver := shapestyle.NewResolver(shapestyle.WithPatternImage(pattern))
	renderer, err := preview.NewRenderer(resolver, preview.WithSamples(samples))
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(state.NewStore(), resolver, renderer), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
