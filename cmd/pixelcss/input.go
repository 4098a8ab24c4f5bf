package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/raster"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/workbook"
)

const defaultClassName = "pixelcss"

// document is the YAML/JSON input layout. A single image may be given
// as a top-level grid instead of a frame list.
type document struct {
	Columns int               `yaml:"columns"`
	Grid    []string          `yaml:"grid"`
	Frames  []models.MapFrame `yaml:"frames"`
}

// input is a loaded frame list with its resolved geometry.
type input struct {
	columns   int
	className string
	frames    []models.FrameSource
}

// load reads frames from path and resolves columns and class name.
// Explicit flags win over values found in the input, which win over config.
func (a *app) load(cmd *cobra.Command, path string) (*input, error) {
	var (
		in  *input
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		in, err = a.loadWorkbook(path)
	default:
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if _, ok := raster.Detect(data); ok {
			in, err = a.loadSprite(cmd, data)
		} else {
			in, err = a.loadDocument(path, data)
		}
	}
	if err != nil {
		return nil, err
	}

	if in.columns <= 0 || cmd.Flags().Changed("columns") {
		in.columns = a.cfg.Columns
	}

	in.className = a.cfg.ClassName
	if in.className == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		in.className = slug.Make(base)
	}
	if in.className == "" {
		in.className = defaultClassName
	}

	a.logger.Debug("Input loaded",
		zap.String("path", path),
		zap.Int("frames", len(in.frames)),
		zap.Int("columns", in.columns),
		zap.String("class", in.className))
	return in, nil
}

func (a *app) loadWorkbook(path string) (*input, error) {
	anim, err := workbook.Open(path, workbook.Options{
		Sheets:       a.cfg.Workbook.Sheets,
		NaturalOrder: a.cfg.Workbook.NaturalOrder,
		Intervals:    a.intervals,
		ScanRows:     a.cfg.Workbook.ScanRows,
		ScanColumns:  a.cfg.Workbook.ScanColumns,
		Logger:       a.logger,
	})
	if err != nil {
		return nil, err
	}
	return &input{columns: anim.Columns, frames: anim.Sources()}, nil
}

// loadSprite decodes an image. An explicit --columns resizes the sprite
// to that width.
func (a *app) loadSprite(cmd *cobra.Command, data []byte) (*input, error) {
	opts := raster.Options{
		Rows:           a.rows,
		AlphaThreshold: a.alpha,
		Logger:         a.logger,
	}
	if cmd.Flags().Changed("columns") {
		opts.Columns = a.cfg.Columns
	}

	sprite, err := raster.Decode(data, opts)
	if err != nil {
		return nil, err
	}

	if a.intervals != nil {
		if len(a.intervals) != len(sprite.Frames) {
			return nil, fmt.Errorf("%d intervals given for %d frames", len(a.intervals), len(sprite.Frames))
		}
		for i, v := range a.intervals {
			sprite.Frames[i].Interval = v
		}
	}
	return &input{columns: sprite.Columns, frames: sprite.Sources()}, nil
}

func (a *app) loadDocument(path string, data []byte) (*input, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	frames := doc.Frames
	for i, f := range frames {
		if f == nil {
			frames[i] = models.MapFrame{}
		}
	}
	if len(frames) == 0 && doc.Grid != nil {
		frames = []models.MapFrame{{"grid": doc.Grid, "interval": 100.0}}
	}

	if a.intervals != nil {
		if len(a.intervals) != len(frames) {
			return nil, fmt.Errorf("%d intervals given for %d frames", len(a.intervals), len(frames))
		}
		for i, v := range a.intervals {
			frames[i]["interval"] = v
		}
	}

	sources := make([]models.FrameSource, len(frames))
	for i, f := range frames {
		sources[i] = f
	}
	return &input{columns: doc.Columns, frames: sources}, nil
}
