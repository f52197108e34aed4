package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/onezone/internal/chem"
	"github.com/san-kum/onezone/internal/config"
	"github.com/san-kum/onezone/internal/series"
	"github.com/san-kum/onezone/internal/storage"
	"github.com/san-kum/onezone/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	curve      string
	gridStart  float64
	gridEnd    float64
	gridPoints int
	save       bool
	// df command
	dfMin    float64
	dfMax    float64
	dfPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "onezone",
		Short: "analytic one-zone galactic chemical evolution",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".onezone", "data directory")

	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "compute and plot abundance tracks",
		RunE:  runTrack,
	}
	trackCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	trackCmd.Flags().StringVar(&preset, "preset", "fiducial", "parameter preset")
	trackCmd.Flags().StringVar(&curve, "curve", "fe_h", "curve to plot (o_h|fe_h|o_fe)")
	trackCmd.Flags().Float64Var(&gridStart, "start", 0, "grid start [Gyr] (0 = config value)")
	trackCmd.Flags().Float64Var(&gridEnd, "end", 0, "grid end [Gyr] (0 = config value)")
	trackCmd.Flags().IntVar(&gridPoints, "points", 0, "grid points (0 = config value)")
	trackCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")

	dfCmd := &cobra.Command{
		Use:   "df",
		Short: "compute and plot an abundance distribution function",
		RunE:  runDF,
	}
	dfCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	dfCmd.Flags().StringVar(&preset, "preset", "fiducial", "parameter preset")
	dfCmd.Flags().StringVar(&curve, "curve", "fe_h", "distribution to plot (o_h|fe_h|o_fe)")
	dfCmd.Flags().Float64Var(&dfMin, "min", -1.5, "abundance grid start [dex]")
	dfCmd.Flags().Float64Var(&dfMax, "max", 0.3, "abundance grid end [dex]")
	dfCmd.Flags().IntVar(&dfPoints, "points", 120, "abundance grid points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&curve, "curve", "fe_h", "curve to plot (o_h|fe_h|o_fe)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter explorer",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "fiducial", "parameter preset")

	rootCmd.AddCommand(trackCmd, dfCmd, presetsCmd, listCmd, showCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the preset, then an optional config file, then grid
// flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if gridStart > 0 {
		cfg.Grid.Start = gridStart
	}
	if gridEnd > 0 {
		cfg.Grid.End = gridEnd
	}
	if gridPoints > 0 {
		cfg.Grid.Points = gridPoints
	}
	return cfg, nil
}

func buildModel(cfg *config.Config) (*chem.OneZone, error) {
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return chem.New(p), nil
}

func pick(tr *storage.Tracks, name string) (series.Series, error) {
	switch name {
	case "o_h":
		return tr.OH, nil
	case "fe_h":
		return tr.FeH, nil
	case "o_fe":
		return tr.OFe, nil
	}
	return nil, fmt.Errorf("unknown curve %q (want o_h, fe_h, or o_fe)", name)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := buildModel(cfg)
	if err != nil {
		return err
	}

	grid := series.Linspace(cfg.Grid.Start, cfg.Grid.End, cfg.Grid.Points)
	tr := &storage.Tracks{
		Times: grid,
		OH:    m.OH(grid),
		FeH:   m.FeH(grid),
		OFe:   m.OFe(grid),
	}

	sel, err := pick(tr, curve)
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(sel,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s over %g-%g Gyr", curve, cfg.Grid.Start, cfg.Grid.End))))

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "\ncurve\tt_min\tt_max\tfinal\n")
	fmt.Fprintf(w, "[O/H]\t%.3f\t%.3f\t%.3f\n", tr.OH.Min(), tr.OH.Max(), tr.OH[len(tr.OH)-1])
	fmt.Fprintf(w, "[Fe/H]\t%.3f\t%.3f\t%.3f\n", tr.FeH.Min(), tr.FeH.Max(), tr.FeH[len(tr.FeH)-1])
	fmt.Fprintf(w, "[O/Fe]\t%.3f\t%.3f\t%.3f\n", tr.OFe.Min(), tr.OFe.Max(), tr.OFe[len(tr.OFe)-1])
	w.Flush()

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(preset, cfg, tr)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}

func runDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := buildModel(cfg)
	if err != nil {
		return err
	}

	xs := series.Linspace(dfMin, dfMax, dfPoints)
	var df series.Series
	switch curve {
	case "o_h":
		df = m.OHDF(xs)
	case "fe_h":
		df = m.FeHDF(xs)
	case "o_fe":
		df = m.OFeDF(xs)
	default:
		return fmt.Errorf("unknown curve %q (want o_h, fe_h, or o_fe)", curve)
	}

	fmt.Println(asciigraph.Plot(df,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s distribution function over %g to %g dex", curve, dfMin, dfMax))))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "name\tdescription")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name].Description)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\ttimestamp\tpoints")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID, run.Name, run.Timestamp.Format("2006-01-02 15:04:05"), run.Points)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTracks(args[0])
	if err != nil {
		return err
	}

	sel, err := pick(tr, curve)
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(sel,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s (%s)", curve, meta.ID))))

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := buildModel(cfg)
	if err != nil {
		return err
	}
	grid := series.Linspace(cfg.Grid.Start, cfg.Grid.End, cfg.Grid.Points)
	return tui.Run(m, grid)
}
