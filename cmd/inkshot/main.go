// Command inkshot annotates screenshots. It loads an image from disk
// or captures one, opens an annotation window and saves or copies the
// result.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/inkshot/internal/capture"
	"github.com/example/inkshot/internal/config"
	"github.com/example/inkshot/internal/notify"
)

// version is overridden at build time.
var version = "dev"

func main() {
	file := flag.String("file", "", "existing image to annotate instead of capturing")
	capt := flag.String("capture", "screen", "capture source: screen, region, monitor:SELECTOR or window:SELECTOR")
	output := flag.String("output", "", "output file path, overriding the configured name")
	tool := flag.String("tool", "", "starting tool, overriding the configured one")
	cfgPath := flag.String("config", "", "configuration file path")
	cursor := flag.Bool("cursor", false, "include the pointer in captures")
	shadow := flag.Bool("shadow", false, "add a drop shadow to the saved image")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("inkshot", version)
		return
	}

	cfg, err := config.NewLoader(version, *cfgPath).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *tool != "" {
		cfg.Tools.Initial = *tool
	}

	st, err := cfg.InitialStyle()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	kind, err := cfg.InitialTool()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	opts, err := cfg.ToolOptions()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	enter, err := cfg.EnterAction()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	img, err := loadImage(*file, *capt, capture.Options{IncludeCursor: *cursor})
	if err != nil {
		log.Fatalf("%v", err)
	}

	notifier := notify.New(notify.LoadPreferences())
	notifier.Enable(notify.EventCapture, cfg.Notify.Capture)
	notifier.Enable(notify.EventSave, cfg.Notify.Save)
	notifier.Enable(notify.EventCopy, cfg.Notify.Copy)
	if *file == "" {
		notifier.Capture(*capt, img)
	}

	outPath := cfg.ExpandOutput(time.Now())
	if cfg.SaveDir != "" && !filepath.IsAbs(outPath) {
		outPath = filepath.Join(cfg.SaveDir, outPath)
	}

	run(runParams{
		image:    img,
		output:   outPath,
		style:    st,
		tool:     kind,
		options:  opts,
		onEnter:  enter,
		shadow:   *shadow,
		notifier: notifier,
	})
}

// loadImage resolves the annotation source: a PNG from disk or a fresh
// capture.
func loadImage(file, capt string, opts capture.Options) (*image.RGBA, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
		return rgba, nil
	}

	switch {
	case capt == "screen":
		img, err := capture.Screen("", opts)
		if err != nil {
			return nil, fmt.Errorf("capture screen: %w", err)
		}
		return img, nil
	case capt == "region":
		img, err := capture.Region(opts)
		if err != nil {
			return nil, fmt.Errorf("capture region: %w", err)
		}
		return img, nil
	case strings.HasPrefix(capt, "monitor:"):
		img, err := capture.Screen(strings.TrimPrefix(capt, "monitor:"), opts)
		if err != nil {
			return nil, fmt.Errorf("capture monitor: %w", err)
		}
		return img, nil
	case strings.HasPrefix(capt, "window:"):
		img, err := capture.Window(strings.TrimPrefix(capt, "window:"), opts)
		if err != nil {
			return nil, fmt.Errorf("capture window: %w", err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("unknown capture source %q", capt)
}
