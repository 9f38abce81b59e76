package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/nconv/internal/config"
	"github.com/san-kum/nconv/internal/physics"
	"github.com/san-kum/nconv/internal/scan"
	"github.com/san-kum/nconv/internal/store"
	"github.com/san-kum/nconv/internal/tui"
	"github.com/san-kum/nconv/internal/viz"
)

var (
	dataDir string
	species string

	// convert
	convName  string
	allTable  bool
	asJSON    bool
	fromQuant string

	// sweep
	sweepMin    float64
	sweepMax    float64
	sweepPoints int
	sweepPlot   bool
	sweepSave   bool
	sweepOut    string
	sweepFormat string
	configFile  string
	preset      string
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	rootCmd := &cobra.Command{
		Use:   "nconv",
		Short: "neutron and helium unit conversions",
		Run: func(cmd *cobra.Command, args []string) {
			if err := tui.Run(); err != nil {
				logger.Fatal().Err(err).Msg("tui failed")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nconv", "data directory")
	rootCmd.PersistentFlags().StringVar(&species, "species", "n", "particle species (neutron, He-3, He-4)")

	convertCmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "convert a single value",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&convName, "conv", "wavelength-energy", "conversion name")
	convertCmd.Flags().BoolVar(&allTable, "all", false, "print all four quantities instead of one conversion")
	convertCmd.Flags().StringVar(&fromQuant, "from", "wavelength", "input quantity for --all (wavelength, energy, momentum, velocity)")
	convertCmd.Flags().BoolVar(&asJSON, "json", false, "machine-readable output")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate a conversion over an input grid",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&convName, "conv", config.DefaultConversion, "conversion name")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", config.DefaultMin, "grid start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", config.DefaultMax, "grid end")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", config.DefaultPoints, "grid size")
	sweepCmd.Flags().BoolVar(&sweepPlot, "plot", false, "render an ascii chart")
	sweepCmd.Flags().BoolVar(&sweepSave, "save", false, "save the run under the data directory")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "write points to a file instead of stdout")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", config.DefaultFormat, "output format (csv or json)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "sweep config file (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "named sweep preset")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list supported species and aliases",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(viz.SpeciesTable())
		},
	}

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "list the physical constants",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(viz.ConstantsTable())
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sweep presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("%s: %s, %s, %g..%g (%d points)\n",
					name, p.Conversion, p.Species, p.Min, p.Max, p.Points)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive converter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(convertCmd, sweepCmd, speciesCmd, constantsCmd, runsCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", args[0])
	}

	if allTable {
		sp, err := physics.ParseSpecies(species)
		if err != nil {
			return err
		}
		from, err := parseQuantity(fromQuant)
		if err != nil {
			return err
		}
		if asJSON {
			q := sp.Derive(from, v)
			fmt.Printf(`{"species":%q,"wavelength":%g,"energy":%g,"momentum":%g,"velocity":%g}`+"\n",
				sp, q.Wavelength, q.Energy, q.Momentum, q.Velocity)
			return nil
		}
		fmt.Print(viz.ConversionTable(sp, from, v))
		return nil
	}

	c, err := scan.Lookup(convName)
	if err != nil {
		return err
	}
	res, err := scan.Run(c.Name, species, []float64{v})
	if err != nil {
		return err
	}
	out := res.Outputs[0]
	if asJSON {
		fmt.Printf(`{"conversion":%q,"species":%q,"input":%g,"output":%g,"unit":%q}`+"\n",
			res.Conversion, res.Species, v, out, res.OutputUnit)
		return nil
	}
	fmt.Printf("%g %s = %g %s (%s)\n", v, res.InputUnit, out, res.OutputUnit, res.Species)
	return nil
}

func sweepConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (known: %v)", preset, config.ListPresets())
		}
	default:
		cfg.Conversion = convName
		cfg.Species = species
		cfg.Min = sweepMin
		cfg.Max = sweepMax
		cfg.Points = sweepPoints
		cfg.Format = sweepFormat
		cfg.Output = sweepOut
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig()
	if err != nil {
		return err
	}

	res, err := scan.Run(cfg.Conversion, cfg.Species, cfg.Grid())
	if err != nil {
		return err
	}

	if sweepPlot {
		fmt.Println(viz.PlotSweep(res, 80, 15))
	}

	if sweepSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		logger.Info().Str("run", runID).Msg("sweep saved")
		return nil
	}

	w := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if cfg.Format == "json" {
		return store.ExportJSON(w, res)
	}
	return store.ExportCSV(w, res)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONVERSION\tSPECIES\tPOINTS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Conversion,
			run.Species,
			run.Points,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func parseQuantity(name string) (physics.Quantity, error) {
	switch name {
	case "wavelength":
		return physics.QuantityWavelength, nil
	case "energy":
		return physics.QuantityEnergy, nil
	case "momentum":
		return physics.QuantityMomentum, nil
	case "velocity":
		return physics.QuantityVelocity, nil
	default:
		return 0, fmt.Errorf("unknown quantity %q (wavelength, energy, momentum, velocity)", name)
	}
}
