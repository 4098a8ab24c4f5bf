// Package main provides the CLI entry point for pixelcss-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/internal/config"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/output"
)

// app holds flag values and state shared by all commands.
type app struct {
	configPath string
	outputPath string
	asJSON     bool
	pretty     bool
	logLevel   string

	columns      int
	pixelSize    float64
	className    string
	blurRadius   float64
	spreadRadius float64
	format       string
	duration     float64
	sheets       []string
	intervals    []float64
	natural      bool
	rows         int
	alpha        uint8

	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{stdout: stdout}

	rootCmd := &cobra.Command{
		Use:   "pixelcss",
		Short: "Render pixel grids as pure-CSS box-shadow images and animations",
		Long: `pixelcss-go converts pixel grids (YAML/JSON documents, xlsx sheets
with painted cells, or PNG/GIF/SVG sprites) into CSS box-shadow images
and keyframe animations.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "pixelcss.yaml", "Configuration file")
	pf.StringVarP(&a.outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.BoolVar(&a.asJSON, "json", false, "Write JSON data instead of CSS")
	pf.BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&a.logLevel, "log-level", "", "Logging level: none, normal, debug")
	pf.IntVar(&a.columns, "columns", 0, "Pixels per grid row")
	pf.Float64Var(&a.pixelSize, "pixel-size", 0, "Pixel size in CSS pixels")
	pf.StringVar(&a.className, "class", "", "CSS class name (default: derived from the input name)")
	pf.StringSliceVar(&a.sheets, "sheets", nil, "Workbook sheets to read, in order")
	pf.BoolVar(&a.natural, "natural", true, "Order workbook sheets by name in natural order")
	pf.IntVar(&a.rows, "rows", 0, "Resize image input to this many rows")
	pf.Uint8Var(&a.alpha, "alpha", 0, "Minimum alpha of a painted image pixel (default 128)")

	imageCmd := &cobra.Command{
		Use:   "image [input]",
		Short: "Generate a box-shadow image class from the first frame",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runImage,
	}
	imageCmd.Flags().Float64Var(&a.blurRadius, "blur", 0, "Blur radius in CSS pixels")
	imageCmd.Flags().Float64Var(&a.spreadRadius, "spread", 0, "Spread radius in CSS pixels")
	imageCmd.Flags().StringVar(&a.format, "format", "", "Shadow data format for --json: string, array")

	animationCmd := &cobra.Command{
		Use:   "animation [input]",
		Short: "Generate an animation class and @keyframes block",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runAnimation,
	}
	animationCmd.Flags().Float64Var(&a.duration, "duration", 0, "Animation duration in seconds")

	keyframesCmd := &cobra.Command{
		Use:   "keyframes [input]",
		Short: "Print the keyframe map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runKeyframes,
	}

	intervalsCmd := &cobra.Command{
		Use:   "intervals [input]",
		Short: "Print the keyframe interval boundaries as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runIntervals,
	}

	for _, cmd := range []*cobra.Command{animationCmd, keyframesCmd, intervalsCmd} {
		cmd.Flags().Float64SliceVar(&a.intervals, "intervals", nil, "Frame end percentages (default: evenly spaced)")
	}

	rootCmd.AddCommand(imageCmd, animationCmd, keyframesCmd, intervalsCmd)
	return rootCmd
}

// setup loads configuration, applies flag overrides and prepares the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns = a.columns
	}
	if flags.Changed("pixel-size") {
		cfg.PixelSize = a.pixelSize
	}
	if flags.Changed("class") {
		cfg.ClassName = a.className
	}
	if flags.Changed("blur") {
		cfg.BlurRadius = a.blurRadius
	}
	if flags.Changed("spread") {
		cfg.SpreadRadius = a.spreadRadius
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("duration") {
		cfg.Duration = a.duration
	}
	if flags.Changed("sheets") {
		cfg.Workbook.Sheets = a.sheets
	}
	if flags.Changed("natural") {
		cfg.Workbook.NaturalOrder = a.natural
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.logger, err = cfg.Logging.Prepare(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.logger != nil {
		// stderr does not support sync on every platform
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) runImage(cmd *cobra.Command, args []string) error {
	in, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	if len(in.frames) == 0 {
		return fmt.Errorf("no frames in %s", args[0])
	}
	grid, err := in.frames[0].FrameGrid()
	if err != nil {
		return fmt.Errorf("first frame of %s: %w", args[0], err)
	}

	opts := pixelcss.ImageOptions{
		Columns:      in.columns,
		PixelSize:    a.cfg.PixelSize,
		BlurRadius:   a.cfg.BlurRadius,
		SpreadRadius: a.cfg.SpreadRadius,
		Format:       models.Format(a.cfg.Format),
		ClassName:    in.className,
		Logger:       a.logger,
	}

	if a.asJSON {
		data, err := output.ShadowToJSON(pixelcss.BuildShadowData(grid, opts), a.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return a.write(data)
	}
	return a.write([]byte(pixelcss.BuildImageClass(grid, opts)))
}

func (a *app) animationOptions(in *input) pixelcss.AnimationOptions {
	return pixelcss.AnimationOptions{
		Columns:   in.columns,
		PixelSize: a.cfg.PixelSize,
		Duration:  a.cfg.Duration,
		ClassName: in.className,
		Logger:    a.logger,
	}
}

func (a *app) runAnimation(cmd *cobra.Command, args []string) error {
	in, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	opts := a.animationOptions(in)
	if a.asJSON {
		return a.writeKeyframes(pixelcss.BuildAnimationKeyframes(in.frames, opts))
	}
	return a.write([]byte(pixelcss.BuildAnimationClass(in.frames, opts)))
}

func (a *app) runKeyframes(cmd *cobra.Command, args []string) error {
	in, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	res := pixelcss.BuildAnimation(in.frames, a.animationOptions(in))
	for _, skipped := range res.Skipped() {
		a.logger.Info("Frame left out of keyframes", zap.Int("frame", skipped.Index), zap.Error(skipped.Err))
	}
	return a.writeKeyframes(res.Keyframes)
}

func (a *app) runIntervals(cmd *cobra.Command, args []string) error {
	in, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	data, err := output.ToJSON(pixelcss.ComputeIntervals(in.frames, a.logger), a.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return a.write(data)
}

func (a *app) writeKeyframes(km *models.KeyframeMap) error {
	data, err := output.KeyframesToJSON(km, a.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return a.write(data)
}

// write stores data in the output file, or prints it to stdout.
func (a *app) write(data []byte) error {
	if a.outputPath != "" {
		if err := os.WriteFile(a.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		a.logger.Info("Output written", zap.String("path", a.outputPath), zap.Int("bytes", len(data)))
		return nil
	}
	_, err := fmt.Fprintln(a.stdout, string(data))
	return err
}
