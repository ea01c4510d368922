// Command onroadrender replays a JSON frame log through the onroad
// renderer and writes one image per frame.
//
// Usage:
//
//	onroadrender -input drive.json -output frames/ [-width 1920 -height 1080]
//
// -target selects the playback target: raster (gg, GPU-accelerated when
// available), vector (CPU-only rasterx) or record. With record nothing is
// rasterized; the command counts of every frame are logged instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/onroad"
	_ "github.com/gogpu/onroad/integration/ggcanvas"     // registers the "raster" target
	_ "github.com/gogpu/onroad/integration/vectorcanvas" // registers the "vector" target
	"github.com/gogpu/onroad/recording"
)

func init() {
	recording.Register("record", func(width, height int) (recording.Target, error) {
		return recording.NewRecorder(width, height), nil
	})
}

// config holds the command-line settings.
type config struct {
	width, height int
	input         string
	output        string
	target        string
	lang          string
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 1920, "image width")
	flag.IntVar(&cfg.height, "height", 1080, "image height")
	flag.StringVar(&cfg.input, "input", "", "JSON frame log (required)")
	flag.StringVar(&cfg.output, "output", ".", "output directory for frame images")
	flag.StringVar(&cfg.target, "target", "raster", "playback target: raster, vector or record")
	flag.StringVar(&cfg.lang, "lang", "en", "BCP 47 language for lead labels")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	if cfg.input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("onroadrender: %v", err)
	}
}

// frameSink is implemented by targets that produce image files.
type frameSink interface {
	Clear()
	SavePNG(path string) error
}

func run(cfg config) (err error) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	onroad.SetLogger(logger)
	gg.SetLogger(logger)

	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", cfg.lang, err)
	}

	frames, err := loadFrameLog(cfg.input)
	if err != nil {
		return err
	}

	target, err := recording.NewTarget(cfg.target, cfg.width, cfg.height)
	if err != nil {
		return err
	}
	if c, ok := target.(interface{ Close() error }); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s target: %w", cfg.target, cerr)
			}
		}()
	}
	sink, writesImages := target.(frameSink)
	if writesImages {
		if err := os.MkdirAll(cfg.output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	r := onroad.NewModelRenderer(onroad.WithLabelLanguage(tag))
	rec := recording.NewRecorder(cfg.width, cfg.height)
	for i := range frames {
		if err := r.Draw(&frames[i], rec); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frame := rec.FinishRecording()
		logger.Debug("frame recorded", "frame", i,
			"fills", len(frame.Fills()), "texts", len(frame.Texts()),
			"speed", r.State().Speed())

		if !writesImages {
			logger.Info("frame", "index", i, "commands", len(frame.Commands()))
			continue
		}

		sink.Clear()
		if err := frame.Playback(target); err != nil {
			logger.Warn("playback reported errors", "frame", i, "err", err)
		}
		path := filepath.Join(cfg.output, fmt.Sprintf("frame_%04d.png", i))
		if err := sink.SavePNG(path); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	logger.Info("rendered", "frames", len(frames), "target", cfg.target, "output", cfg.output)
	return nil
}
