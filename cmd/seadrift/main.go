package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/CelineBarrier/seadrift/internal/advect"
	"github.com/CelineBarrier/seadrift/internal/capture"
	"github.com/CelineBarrier/seadrift/internal/coast"
	"github.com/CelineBarrier/seadrift/internal/config"
	"github.com/CelineBarrier/seadrift/internal/field"
	"github.com/CelineBarrier/seadrift/internal/render"
	"github.com/CelineBarrier/seadrift/internal/seed"
	"github.com/CelineBarrier/seadrift/internal/sim"
	"github.com/CelineBarrier/seadrift/internal/traj"
	"github.com/CelineBarrier/seadrift/internal/viz"
	"github.com/gosuri/uiprogress"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

const (
	trajFile    = "trajectories.nc"
	metaFile    = "run.json"
	curveFile   = "curve.csv"
	captureFile = "capture.json"
)

var (
	configFile string
	outDir     string

	fieldPath    string
	uVar         string
	vVar         string
	particles    int
	seedVal      int64
	durationDays float64
	dtMinutes    float64
	outputHours  float64
	wallLon      float64
	minLon       float64
	dilation     int
	maturation   float64

	mapStride int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seadrift",
		Short: "lagrangian particle drift and capture simulation",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "seadrift-out", "run output directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "seed particles and integrate their drift",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&fieldPath, "field", "", "velocity field netCDF file")
	runCmd.Flags().StringVar(&uVar, "u-var", "uo", "zonal velocity variable name")
	runCmd.Flags().StringVar(&vVar, "v-var", "vo", "meridional velocity variable name")
	runCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "requested particle count")
	runCmd.Flags().Int64Var(&seedVal, "seed", 0, "random seed (0 = time-based)")
	runCmd.Flags().Float64Var(&durationDays, "time", config.DefaultDurationDays, "run duration in days")
	runCmd.Flags().Float64Var(&dtMinutes, "dt", config.DefaultDtMinutes, "integration step in minutes")
	runCmd.Flags().Float64Var(&outputHours, "output-every", config.DefaultOutputHours, "recording cadence in hours")
	runCmd.Flags().Float64Var(&wallLon, "wall", config.DefaultWestWallLon, "western wall longitude")
	runCmd.Flags().Float64Var(&minLon, "min-lon", config.DefaultMinLon, "seeding longitude cutoff")
	runCmd.Flags().IntVar(&dilation, "dilation", config.DefaultDilation, "coastal mask dilation iterations")

	maskCmd := &cobra.Command{
		Use:   "mask",
		Short: "report coastal mask and candidate counts",
		RunE:  maskReport,
	}
	maskCmd.Flags().StringVar(&fieldPath, "field", "", "velocity field netCDF file")
	maskCmd.Flags().StringVar(&uVar, "u-var", "uo", "zonal velocity variable name")
	maskCmd.Flags().StringVar(&vVar, "v-var", "vo", "meridional velocity variable name")
	maskCmd.Flags().IntVar(&dilation, "dilation", config.DefaultDilation, "coastal mask dilation iterations")
	maskCmd.Flags().Float64Var(&minLon, "min-lon", config.DefaultMinLon, "seeding longitude cutoff")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "recompute captures from stored trajectories",
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&maturation, "maturation", config.DefaultMaturationDays, "maturation threshold in days")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "terminal chart and track map for a stored run",
		RunE:  plotRun,
	}
	plotCmd.Flags().Float64Var(&maturation, "maturation", config.DefaultMaturationDays, "maturation threshold in days")
	plotCmd.Flags().IntVar(&mapStride, "stride", render.StaticStride, "plot every n-th particle")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "generate maps, chart and dashboard for a stored run",
		RunE:  renderRun,
	}
	renderCmd.Flags().Float64Var(&maturation, "maturation", config.DefaultMaturationDays, "maturation threshold in days")

	rootCmd.AddCommand(runCmd, maskCmd, analyzeCmd, plotCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with defaults; CLI flags
// that were set explicitly override both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("field") {
		cfg.Field.Path = fieldPath
	}
	if flags.Changed("u-var") {
		cfg.Field.UVar = uVar
	}
	if flags.Changed("v-var") {
		cfg.Field.VVar = vVar
	}
	if flags.Changed("particles") {
		cfg.Seeding.Particles = particles
	}
	if flags.Changed("seed") {
		cfg.Seeding.Seed = seedVal
	}
	if flags.Changed("dilation") {
		cfg.Seeding.Dilation = dilation
	}
	if flags.Changed("min-lon") {
		cfg.Seeding.MinLon = minLon
	}
	if flags.Changed("time") {
		cfg.Run.DurationDays = durationDays
	}
	if flags.Changed("dt") {
		cfg.Run.DtMinutes = dtMinutes
	}
	if flags.Changed("output-every") {
		cfg.Run.OutputHours = outputHours
	}
	if flags.Changed("wall") {
		cfg.Run.WestWallLon = wallLon
	}
	if flags.Changed("maturation") {
		cfg.Capture.MaturationDays = maturation
	}
	if flags.Changed("out") || cfg.Output.Dir == "" {
		cfg.Output.Dir = outDir
	}
	return cfg, nil
}

func captureBox(cfg *config.Config) capture.Box {
	b := cfg.Capture.Box
	return capture.Box{LonMin: b.LonMin, LonMax: b.LonMax, LatMin: b.LatMin, LatMax: b.LatMax}
}

type progressObserver struct {
	bar *uiprogress.Bar
}

func (o *progressObserver) OnStep(step int, day float64) { o.bar.Incr() }

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return err
	}

	fmt.Printf("[1/5] loading velocity field %s\n", cfg.Field.Path)
	vf, err := field.Load(cfg.Field.Path, field.LoadConfig{UVar: cfg.Field.UVar, VVar: cfg.Field.VVar})
	if err != nil {
		return err
	}

	fmt.Printf("[2/5] building coastal mask (%d dilation iterations)\n", cfg.Seeding.Dilation)
	land := coast.Landmask(vf.Snapshots[0])
	band := coast.Band(land, coast.Dilate(land, cfg.Seeding.Dilation))
	candidates := coast.Candidates(vf.Grid, band, cfg.Seeding.MinLon)

	fmt.Printf("[3/5] seeding %d particles from %d coastal cells\n", cfg.Seeding.Particles, len(candidates))
	rngSeed := cfg.Seeding.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	seeds := seed.Positions(vf.Grid, seed.Pick(candidates, cfg.Seeding.Particles, rng))
	if len(seeds) < cfg.Seeding.Particles {
		fmt.Printf("      coastal band smaller than requested, running %d particles\n", len(seeds))
	}

	fmt.Printf("[4/5] advecting for %.0f days (dt %.0f min, output every %.0f h)\n",
		cfg.Run.DurationDays, cfg.Run.DtMinutes, cfg.Run.OutputHours)

	sampler := field.NewSampler(vf)
	engine := sim.New(advect.FieldDerivative(sampler), advect.WesternWall(cfg.Run.WestWallLon))

	simCfg := sim.Config{
		DtDays:       cfg.DtDays(),
		DurationDays: cfg.Run.DurationDays,
		OutputEvery:  cfg.OutputEverySteps(),
	}
	steps := int(simCfg.DurationDays / simCfg.DtDays)

	uiprogress.Start()
	bar := uiprogress.AddBar(steps).AppendCompleted().PrependElapsed()
	engine.AddObserver(&progressObserver{bar: bar})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := traj.NewStore(len(seeds))
	result, err := engine.Run(ctx, seeds, store, simCfg)
	uiprogress.Stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Printf("      interrupted after %d steps, saving partial run\n", result.StepsTaken)
	}

	fmt.Printf("[5/5] analyzing and saving to %s\n", cfg.Output.Dir)
	if err := traj.WriteNetCDF(filepath.Join(cfg.Output.Dir, trajFile), store); err != nil {
		return err
	}
	meta := traj.RunMeta{
		Timestamp:    time.Now(),
		FieldPath:    cfg.Field.Path,
		Requested:    cfg.Seeding.Particles,
		Particles:    len(seeds),
		Lost:         result.Lost,
		Seed:         rngSeed,
		DtMinutes:    cfg.Run.DtMinutes,
		DurationDays: cfg.Run.DurationDays,
		OutputHours:  cfg.Run.OutputHours,
		WestWallLon:  cfg.Run.WestWallLon,
	}
	if err := traj.SaveMeta(filepath.Join(cfg.Output.Dir, metaFile), meta); err != nil {
		return err
	}

	res := capture.Analyze(store, captureBox(cfg), cfg.Capture.MaturationDays)
	if err := res.WriteCurveCSV(filepath.Join(cfg.Output.Dir, curveFile)); err != nil {
		return err
	}
	if err := res.WriteJSON(filepath.Join(cfg.Output.Dir, captureFile)); err != nil {
		return err
	}

	printSummary("run complete", store, res, meta)
	return nil
}

func maskReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	vf, err := field.Load(cfg.Field.Path, field.LoadConfig{UVar: cfg.Field.UVar, VVar: cfg.Field.VVar})
	if err != nil {
		return err
	}

	land := coast.Landmask(vf.Snapshots[0])
	dilated := coast.Dilate(land, cfg.Seeding.Dilation)
	band := coast.Band(land, dilated)
	candidates := coast.Candidates(vf.Grid, band, cfg.Seeding.MinLon)

	fmt.Printf("grid:             %dx%d cells\n", vf.Grid.NY(), vf.Grid.NX())
	fmt.Printf("snapshots:        %d (%.1f days)\n", len(vf.Times), vf.Times[len(vf.Times)-1])
	fmt.Printf("land cells:       %d\n", land.Count())
	fmt.Printf("coastal band:     %d\n", band.Count())
	fmt.Printf("candidates:       %d (lon > %.2f)\n", len(candidates), cfg.Seeding.MinLon)
	return nil
}

func loadRun(cfg *config.Config) (*traj.Store, *traj.RunMeta, error) {
	store, err := traj.ReadNetCDF(filepath.Join(cfg.Output.Dir, trajFile))
	if err != nil {
		return nil, nil, err
	}
	meta, err := traj.LoadMeta(filepath.Join(cfg.Output.Dir, metaFile))
	if err != nil {
		return nil, nil, err
	}
	return store, meta, nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, meta, err := loadRun(cfg)
	if err != nil {
		return err
	}

	res := capture.Analyze(store, captureBox(cfg), cfg.Capture.MaturationDays)
	if err := res.WriteCurveCSV(filepath.Join(cfg.Output.Dir, curveFile)); err != nil {
		return err
	}
	if err := res.WriteJSON(filepath.Join(cfg.Output.Dir, captureFile)); err != nil {
		return err
	}

	plotCurve(res)
	printSummary("capture analysis", store, res, *meta)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, _, err := loadRun(cfg)
	if err != nil {
		return err
	}

	res := capture.Analyze(store, captureBox(cfg), cfg.Capture.MaturationDays)

	fmt.Println(viz.TrackMap(store, captureBox(cfg), 80, 24, mapStride))
	plotCurve(res)
	return nil
}

func plotCurve(res *capture.Result) {
	if len(res.Curve) == 0 {
		fmt.Println("no curve data")
		return
	}
	data := make([]float64, len(res.Curve))
	for i, pt := range res.Curve {
		data[i] = float64(pt.Count)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cumulative captures"),
	)
	fmt.Println(graph)
	fmt.Println()
}

func renderRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, _, err := loadRun(cfg)
	if err != nil {
		return err
	}
	box := captureBox(cfg)
	res := capture.Analyze(store, box, cfg.Capture.MaturationDays)
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	staticPath := filepath.Join(cfg.Output.Dir, "map_static.html")
	if err := writeTo(staticPath, func(f *os.File) error {
		return render.StaticMap(f, store, render.StaticStride)
	}); err != nil {
		return err
	}

	animated := render.AnimatedPoints(store, res, startDate, render.AnimatedStride, render.AnimatedTimeStride)
	animatedPath := filepath.Join(cfg.Output.Dir, "map_animated.html")
	if err := writeTo(animatedPath, func(f *os.File) error {
		return render.AnimatedMap(f, animated, box)
	}); err != nil {
		return err
	}

	dash := render.AnimatedPoints(store, res, startDate, render.DashboardStride, render.AnimatedTimeStride)
	dashMapPath := filepath.Join(cfg.Output.Dir, "map_dashboard.html")
	if err := writeTo(dashMapPath, func(f *os.File) error {
		return render.AnimatedMap(f, dash, box)
	}); err != nil {
		return err
	}

	chart := render.CurveSVG(res, cfg.Capture.MaturationDays, 700, 500)
	if err := os.WriteFile(filepath.Join(cfg.Output.Dir, "curve.svg"), []byte(chart), 0644); err != nil {
		return err
	}

	summary := capture.Summarize(res, store.NumParticles())
	dashboardPath := filepath.Join(cfg.Output.Dir, "dashboard.html")
	if err := writeTo(dashboardPath, func(f *os.File) error {
		return render.Dashboard(f, render.DashboardData{
			Title:     "Particle drift dynamics",
			MapFile:   "map_dashboard.html",
			ChartSVG:  template.HTML(chart),
			Particles: summary.Particles,
			Captured:  summary.Captured,
			Rate:      render.RatePercent(summary.Rate),
		})
	}); err != nil {
		return err
	}

	fmt.Printf("rendered %s, %s, %s\n", staticPath, animatedPath, dashboardPath)
	return nil
}

func writeTo(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

func printSummary(title string, store *traj.Store, res *capture.Result, meta traj.RunMeta) {
	summary := capture.Summarize(res, store.NumParticles())

	rows := [][2]string{
		{"particles", fmt.Sprintf("%d (%d requested)", meta.Particles, meta.Requested)},
		{"lost", fmt.Sprintf("%d", meta.Lost)},
		{"output steps", fmt.Sprintf("%d", store.NumSteps())},
		{"captured", fmt.Sprintf("%d (%s)", summary.Captured, render.RatePercent(summary.Rate))},
	}
	if summary.Captured > 0 {
		rows = append(rows,
			[2]string{"mean capture day", fmt.Sprintf("%.1f", summary.MeanDay)},
			[2]string{"median capture day", fmt.Sprintf("%.1f", summary.MedianDay)},
		)
	}
	fmt.Println(viz.SummaryCard(title, rows))
}
