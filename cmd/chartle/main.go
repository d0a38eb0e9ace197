// Package main provides the CLI entrypoint for chartle.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/averku/chartle/internal/analytics"
	"github.com/averku/chartle/internal/config"
	"github.com/averku/chartle/internal/dashui"
	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/export"
	"github.com/averku/chartle/internal/htmlchart"
	"github.com/averku/chartle/internal/model"
	"github.com/averku/chartle/internal/render"
	"github.com/averku/chartle/internal/store"
	"github.com/averku/chartle/internal/wordle"
)

const (
	defaultPreset    = analytics.PresetRoundDistribution
	defaultHTMLOut   = "chartle.html"
	reportPlotHeight = 10
	previewRows      = 30
)

var (
	useSample   bool
	useLatest   bool
	viewDays    int
	viewLimit   int
	viewPreset  string
	viewFilter  string
	genericX    string
	genericY    string
	genericMode string

	chartKind string
	outPath   string

	importName string
	deleteID   int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chartle [file.csv]",
		Short:         "Terminal CSV analytics dashboard for Wordle group results",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}
	addViewFlags(rootCmd)

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHTMLCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newDatasetsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&useSample, "sample", false, "use the built-in sample CSV")
	cmd.Flags().BoolVar(&useLatest, "latest", false, "use the most recently imported dataset")
	cmd.Flags().IntVar(&viewDays, "days", 0, "limit to the last N distinct days (0 = all)")
	cmd.Flags().IntVar(&viewLimit, "limit", model.DefaultLimit, "leaderboard size (3-50)")
	cmd.Flags().StringVar(&viewPreset, "preset", defaultPreset, "analytic preset: "+strings.Join(analytics.Presets, ", "))
	cmd.Flags().StringVar(&viewFilter, "filter", "", "free-text row filter")
	cmd.Flags().StringVar(&genericX, "x", "", "x column for non-Wordle CSVs")
	cmd.Flags().StringVar(&genericY, "y", "", "y column for non-Wordle CSVs")
	cmd.Flags().StringVar(&genericMode, "mode", string(model.AggCount), "aggregation for non-Wordle CSVs: none, count, sum, avg")
}

// input bundles a loaded table with its classification and, in Wordle
// mode, the normalized facts derived from it.
type input struct {
	table  *dataset.Table
	schema model.SchemaKind
	facts  []model.Fact
	stored bool
}

func loadInput(args []string) (input, error) {
	if useLatest {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return input{}, fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		ctx := context.Background()
		ds, ok, err := st.LatestDataset(ctx)
		if err != nil {
			return input{}, fmt.Errorf("failed to load latest dataset: %w", err)
		}
		if !ok {
			return input{}, fmt.Errorf("no datasets imported yet (run: chartle import file.csv)")
		}
		facts, err := st.FactsForDataset(ctx, ds.ID)
		if err != nil {
			return input{}, fmt.Errorf("failed to load dataset %d: %w", ds.ID, err)
		}
		return input{
			table:  export.AsTable(ds.Name, facts),
			schema: model.SchemaWordle,
			facts:  facts,
			stored: true,
		}, nil
	}

	var table *dataset.Table
	var err error
	switch {
	case useSample:
		table, err = dataset.LoadSample()
	case len(args) == 1:
		table, err = dataset.Load(args[0])
	default:
		return input{}, fmt.Errorf("provide a CSV file, --sample, or --latest")
	}
	if err != nil {
		return input{}, fmt.Errorf("failed to load CSV: %w", err)
	}

	in := input{table: table, schema: model.SchemaGeneric}
	if table.Empty() {
		in.schema = model.SchemaNone
		return in, nil
	}
	if wordle.IsSummary(table.Columns) {
		in.schema = model.SchemaWordle
		in.facts = wordle.Normalize(table)
	}
	return in, nil
}

func viewConfig(cmd *cobra.Command) (model.ViewConfig, error) {
	mode, ok := model.ParseAggMode(genericMode)
	if !ok {
		return model.ViewConfig{}, fmt.Errorf("invalid --mode %q (use none, count, sum, or avg)", genericMode)
	}
	cfg := model.ViewConfig{
		Days:    viewDays,
		Limit:   model.ClampLimit(viewLimit),
		Preset:  viewPreset,
		Filter:  viewFilter,
		XColumn: genericX,
		YColumn: genericY,
		Mode:    mode,
	}
	if cfg.Days < 0 {
		return model.ViewConfig{}, fmt.Errorf("--days must be >= 0")
	}
	return cfg, nil
}

func mergeFileConfig(cmd *cobra.Command, args []string) ([]string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "preset", &viewPreset, fileCfg.Dashboard.Preset)
	applyIntConfig(cmd, "days", &viewDays, fileCfg.Dashboard.Days)
	applyIntConfig(cmd, "limit", &viewLimit, fileCfg.Dashboard.Limit)
	applyStringConfig(cmd, "filter", &viewFilter, fileCfg.Dashboard.Filter)
	if len(args) == 0 && !useSample && !useLatest && fileCfg.Dashboard.File != nil && *fileCfg.Dashboard.File != "" {
		args = []string{*fileCfg.Dashboard.File}
	}
	return args, nil
}

func runDashboardCmd(cmd *cobra.Command, args []string) error {
	args, err := mergeFileConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := viewConfig(cmd)
	if err != nil {
		return err
	}
	in, err := loadInput(args)
	if err != nil {
		return err
	}

	var m *dashui.Model
	if in.stored {
		m = dashui.NewStoredModel(in.table, in.facts, cfg)
	} else {
		m = dashui.NewModel(in.table, cfg)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file.csv]",
		Short: "Print a plain-text report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReportCmd,
	}
	addViewFlags(cmd)
	cmd.Flags().StringVar(&chartKind, "chart", "", "chart style: bar or line (default: per preset)")
	return cmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	args, err := mergeFileConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := viewConfig(cmd)
	if err != nil {
		return err
	}
	in, err := loadInput(args)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	switch in.schema {
	case model.SchemaNone:
		_, err := fmt.Fprintln(w, "CSV has no data rows.")
		return err
	case model.SchemaGeneric:
		return writeGenericReport(w, in.table, cfg)
	}

	win := wordle.SelectLastDays(in.facts, cfg.Days)
	players := wordle.Players(win.Facts)
	if err := render.Overview(w, win.Facts, players, win.TotalDays, win.LatestLabel); err != nil {
		return err
	}
	if len(win.Facts) == 0 {
		return nil
	}

	series, ok := analytics.BuildPreset(cfg.Preset, win.Facts, cfg.Limit)
	if !ok {
		return fmt.Errorf("unknown preset %q (use: %s)", cfg.Preset, strings.Join(analytics.Presets, ", "))
	}
	kind := chartKind
	if kind == "" {
		kind = analytics.SuggestedChart(cfg.Preset)
	}
	if err := render.Chart(w, series, kind, 0, reportPlotHeight, false); err != nil {
		return err
	}
	if err := render.Leaderboard(w, analytics.KingWins(win.Facts, cfg.Limit)); err != nil {
		return err
	}
	if err := writePlayersTable(w, win.Facts, players); err != nil {
		return err
	}
	return writePreview(w, in.table, cfg.Filter)
}

func writeGenericReport(w io.Writer, table *dataset.Table, cfg model.ViewConfig) error {
	if cfg.XColumn == "" {
		if _, err := fmt.Fprintln(w, "Not a Wordle summary. Pick columns with --x and --y to chart this file."); err != nil {
			return err
		}
		return writePreview(w, table, cfg.Filter)
	}
	rows := table.FilterRows(cfg.Filter)
	if cfg.Mode == model.AggNone {
		return writeRawPoints(w, rows, cfg.XColumn, cfg.YColumn)
	}
	series := analytics.GroupBy(rows, cfg.XColumn, cfg.YColumn, cfg.Mode)
	if len(series.Values) == 0 {
		_, err := fmt.Fprintln(w, "No rows to aggregate.")
		return err
	}
	return render.Bar(w, series, 0)
}

// writeRawPoints prints one ungrouped x/y pair per row, values as-is.
func writeRawPoints(w io.Writer, rows []dataset.Row, xCol, yCol string) error {
	points := analytics.RawPoints(rows, xCol, yCol)
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "No rows to plot.")
		return err
	}
	tableRows := make([][]string, 0, len(points))
	for _, p := range points {
		tableRows = append(tableRows, []string{p.X, p.Y})
	}
	for _, line := range render.Table([]string{xCol, yCol}, tableRows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writePlayersTable(w io.Writer, facts []model.Fact, players []string) error {
	if len(players) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Players"); err != nil {
		return err
	}
	headers := []string{"Player", "Games", "Solved", "Crowns", "Points"}
	rows := make([][]string, 0, len(players))
	for _, player := range players {
		metrics := analytics.SummarizePlayer(facts, player)
		solved := 0
		for _, bucket := range model.GuessBuckets[:6] {
			solved += metrics.PerRound[bucket]
		}
		rows = append(rows, []string{
			player,
			fmt.Sprintf("%d", metrics.TotalGames),
			fmt.Sprintf("%d", solved),
			fmt.Sprintf("%d", metrics.CrownWins),
			fmt.Sprintf("%d", analytics.TotalPoints(metrics)),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range render.Table(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func writePreview(w io.Writer, table *dataset.Table, filter string) error {
	rows := table.FilterRows(filter)
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No rows match %q.\n", filter)
		return err
	}
	shown := rows
	if len(shown) > previewRows {
		shown = shown[:previewRows]
	}
	if _, err := fmt.Fprintf(w, "Preview (%d of %d rows)\n", len(shown), len(rows)); err != nil {
		return err
	}
	tableRows := make([][]string, 0, len(shown))
	for _, row := range shown {
		cells := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			cells[i] = row.Cell(col)
		}
		tableRows = append(tableRows, cells)
	}
	for _, line := range render.Table(table.Columns, tableRows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Write normalized games as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCmd,
	}
	addViewFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	args, err := mergeFileConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := viewConfig(cmd)
	if err != nil {
		return err
	}
	in, err := loadInput(args)
	if err != nil {
		return err
	}
	if in.schema != model.SchemaWordle {
		return fmt.Errorf("export needs a Wordle summary CSV")
	}
	win := wordle.SelectLastDays(in.facts, cfg.Days)

	w := cmd.OutOrStdout()
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				logErrf("failed to close %s: %v\n", outPath, cerr)
			}
		}()
		w = file
	}
	if err := export.WriteFacts(w, win.Facts); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if outPath != "" {
		logErrf("Wrote %d games to %s\n", len(win.Facts), outPath)
	}
	return nil
}

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html [file.csv]",
		Short: "Render charts as a standalone HTML page",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHTMLCmd,
	}
	addViewFlags(cmd)
	cmd.Flags().StringVar(&chartKind, "chart", "", "chart style: bar or line (default: per preset)")
	cmd.Flags().StringVarP(&outPath, "out", "o", defaultHTMLOut, "output path")
	return cmd
}

func runHTMLCmd(cmd *cobra.Command, args []string) error {
	args, err := mergeFileConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := viewConfig(cmd)
	if err != nil {
		return err
	}
	in, err := loadInput(args)
	if err != nil {
		return err
	}

	charts, err := buildHTMLCharts(in, cfg)
	if err != nil {
		return err
	}
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close %s: %v\n", outPath, cerr)
		}
	}()
	if err := htmlchart.WritePage(file, "chartle", charts...); err != nil {
		return err
	}
	logErrf("Wrote %s\n", outPath)
	return nil
}

func buildHTMLCharts(in input, cfg model.ViewConfig) ([]components.Charter, error) {
	switch in.schema {
	case model.SchemaNone:
		return nil, fmt.Errorf("CSV has no data rows")
	case model.SchemaGeneric:
		if cfg.XColumn == "" {
			return nil, fmt.Errorf("not a Wordle summary: pick columns with --x and --y")
		}
		rows := in.table.FilterRows(cfg.Filter)
		if cfg.Mode == model.AggNone {
			points := analytics.NumericPoints(rows, cfg.XColumn, cfg.YColumn)
			if len(points) == 0 {
				return nil, fmt.Errorf("no numeric points for %s/%s", cfg.XColumn, cfg.YColumn)
			}
			ps := model.PointSeries{
				Points: points,
				Title:  fmt.Sprintf("%s vs %s", cfg.YColumn, cfg.XColumn),
				XLabel: cfg.XColumn,
				YLabel: cfg.YColumn,
			}
			return []components.Charter{htmlchart.BuildScatter(ps)}, nil
		}
		series := analytics.GroupBy(rows, cfg.XColumn, cfg.YColumn, cfg.Mode)
		if len(series.Values) == 0 {
			return nil, fmt.Errorf("no rows to aggregate")
		}
		return []components.Charter{htmlchart.BuildBar(series)}, nil
	}

	win := wordle.SelectLastDays(in.facts, cfg.Days)
	if len(win.Facts) == 0 {
		return nil, fmt.Errorf("no games in the selected window")
	}
	var charts []components.Charter
	for _, preset := range analytics.Presets {
		series, ok := analytics.BuildPreset(preset, win.Facts, cfg.Limit)
		if !ok {
			continue
		}
		kind := chartKind
		if kind == "" {
			kind = analytics.SuggestedChart(preset)
		}
		charts = append(charts, htmlchart.BuildChart(series, kind))
	}
	return charts, nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import file.csv",
		Short: "Normalize a CSV and save it to the local store",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVar(&importName, "name", "", "dataset name (default: file name)")
	return cmd
}

func runImportCmd(_ *cobra.Command, args []string) error {
	table, err := dataset.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load CSV: %w", err)
	}
	if !wordle.IsSummary(table.Columns) {
		return fmt.Errorf("%s is not a Wordle summary CSV", args[0])
	}
	facts := wordle.Normalize(table)

	name := importName
	if name == "" {
		name = filepath.Base(args[0])
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	id, err := st.SaveDataset(context.Background(), name, facts)
	if err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	logErrf("Imported %s as dataset %d (%d games)\n", name, id, len(facts))
	return nil
}

func newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List imported datasets",
		Args:  cobra.NoArgs,
		RunE:  runDatasetsCmd,
	}
	cmd.Flags().Int64Var(&deleteID, "delete", 0, "delete the dataset with this id")
	return cmd
}

func runDatasetsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	ctx := context.Background()

	if deleteID != 0 {
		if err := st.DeleteDataset(ctx, deleteID); err != nil {
			return fmt.Errorf("failed to delete dataset %d: %w", deleteID, err)
		}
		logErrf("Deleted dataset %d\n", deleteID)
	}

	datasets, err := st.ListDatasets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}
	w := cmd.OutOrStdout()
	if len(datasets) == 0 {
		_, err := fmt.Fprintln(w, "No datasets imported yet.")
		return err
	}
	headers := []string{"ID", "Name", "Games", "Days", "Imported"}
	rows := make([][]string, 0, len(datasets))
	for _, ds := range datasets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", ds.ID),
			ds.Name,
			fmt.Sprintf("%d", ds.FactCount),
			fmt.Sprintf("%d", ds.DayCount),
			ds.ImportedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true}
	for _, line := range render.Table(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# chartle configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# file = "results.csv"    # CSV to open when no file argument is given
# preset = %q             # Default analytic preset
# days = 0                # Last N distinct days (0 = all)
# limit = %d              # Leaderboard size (%d-%d)
# filter = ""             # Free-text row filter
`,
		defaultPreset,
		model.DefaultLimit,
		model.LimitMin,
		model.LimitMax,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
