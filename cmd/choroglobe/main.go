package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"choroglobe/internal/config"
	"choroglobe/internal/geo"
	"choroglobe/internal/host"
	"choroglobe/internal/tui"
)

var (
	geoPath    string
	dataPath   string
	configPath string
	logPath    string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "choroglobe",
	Short: "Terminal choropleth globe viewer",
	Long: `choroglobe renders country data as a color-coded map in the terminal.
It binds rows of (country, color value, measures) from a CSV payload to
a GeoJSON country catalog and keeps legend and selection in sync.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&geoPath, "geo", "countries.geojson", "GeoJSON country catalog")
	rootCmd.Flags().StringVar(&dataPath, "data", "data.csv", "payload CSV (category:/color:/measure: header roles)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	rootCmd.Flags().StringVar(&logPath, "log", "choroglobe.log", "log file path")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "re-run the update cycle when the payload file changes")
}

func run(cmd *cobra.Command, args []string) error {
	opts := config.Default()
	if configPath != "" {
		var err error
		opts, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	logger, err := host.NewLogger(logPath, opts.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()

	catalog, err := geo.LoadCatalog(geoPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	sink := host.NewLogSink(logger)
	m := tui.New(catalog, dataPath, opts, sink, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if watch {
		w, err := host.NewPayloadWatcher(dataPath, logger)
		if err != nil {
			return fmt.Errorf("watch payload: %w", err)
		}
		w.Start(func() { p.Send(tui.PayloadChangedMsg{}) })
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
