package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/philocalyst/fweh"
	"github.com/sunshineplan/tiff"
	"github.com/sunshineplan/utils/log"
)

var (
	supported = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|tiff?|bmp|webp)$`)
	tiffImage = regexp.MustCompile(`(?i)\.tiff?$`)
)

// buildOptions fills task from the command line flags.
func buildOptions(task *fweh.Options) error {
	if err := task.SetFormat(*format, fweh.JPEGQuality(*quality)); err != nil {
		return err
	}
	task.SetScale(*scale).SetRoundness(*roundness)

	pt, err := parsePoint(*offset)
	if err != nil {
		return err
	}
	task.SetOffset(pt)

	bg, err := parseBackground(*background)
	if err != nil {
		return err
	}
	task.SetBackground(bg)

	if *ratio != "" {
		w, h, err := parseRatio(*ratio)
		if err != nil {
			return err
		}
		task.SetRatio(w, h)
	}

	if *shadowOffset != "" {
		pt, err := parsePoint(*shadowOffset)
		if err != nil {
			return err
		}
		c, err := fweh.ParseColor(*shadowColor)
		if err != nil {
			return err
		}
		task.SetShadow(&fweh.ShadowOption{
			Offset:  pt,
			Color:   c,
			Radius:  *shadowRadius,
			Opacity: *shadowOpacity,
		})
	}

	if *width != 0 || *height != 0 || *percent != 0 {
		task.SetResize(*width, *height, *percent)
	}
	return nil
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (image.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid point format: %s", s)
	}
	px, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return image.Point{}, err
	}
	py, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(px, py), nil
}

// parseRatio parses "W:H" into its components.
func parseRatio(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid ratio format: %s", s)
	}
	rw, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, err
	}
	rh, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, err
	}
	return rw, rh, nil
}

// parseBackground parses a background value with a colr:, grad: or imag:
// prefix.
func parseBackground(s string) (fweh.Background, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return fweh.Background{}, fmt.Errorf("invalid background format: %s", s)
	}
	switch kind {
	case "colr":
		c, err := fweh.ParseColor(value)
		if err != nil {
			return fweh.Background{}, err
		}
		return fweh.SolidBackground(c), nil
	case "grad":
		stops, err := fweh.ParseGradient(value)
		if err != nil {
			return fweh.Background{}, err
		}
		return fweh.GradientBackground(stops...), nil
	case "imag":
		img, err := open(value)
		if err != nil {
			return fweh.Background{}, err
		}
		return fweh.ImageBackground(img), nil
	default:
		return fweh.Background{}, fmt.Errorf("unknown background kind: %s", kind)
	}
}

func open(file string) (image.Image, error) {
	img, err := fweh.Open(file, fweh.AutoOrientation(*autoOrientation))
	if err != nil && tiffImage.MatchString(file) {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return tiff.Decode(f)
	}
	return img, err
}

// loadImages walks root collecting supported images, showing a scan message
// once per second.
func loadImages(root string) (imgs []string) {
	var message string
	var width int
	done := make(chan struct{})
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m := message
				if !*quiet {
					fmt.Fprintf(os.Stdout, "\r%s\r%s", strings.Repeat(" ", width), m)
				}
				width = len(m)
			}
		}
	}()
	var dir string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, _ error) error {
		if supported.MatchString(d.Name()) {
			imgs = append(imgs, path)
		}
		if d.IsDir() {
			dir = filepath.Dir(path)
		}
		message = fmt.Sprintf("Found images: %d, Scanning directory %s", len(imgs), dir)
		return nil
	})
	close(done)
	if !*quiet {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", width))
	}
	return
}

var errSkip = errors.New("skip")

// convert frames a single image file and writes it to output through a
// temporary file.
func convert(task *fweh.Options, image, output string, force bool) (err error) {
	if _, err = os.Stat(output); err == nil {
		if !force {
			return errSkip
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Error("Failed to get FileInfo", "name", output, "error", err)
		return
	}
	path := filepath.Dir(output)
	if err = os.MkdirAll(path, 0755); err != nil {
		log.Error("Failed to create directory", "path", path, "error", err)
		return
	}
	img, err := open(image)
	if err != nil {
		log.Error("Failed to open image", "image", image, "error", err)
		return
	}
	f, err := os.CreateTemp(path, "*.tmp")
	if err != nil {
		log.Error("Failed to create temporary file", "path", path, "error", err)
		return
	}
	if err = task.Convert(f, img); err != nil {
		log.Error("Failed to frame image", "image", image, "error", err)
		return
	}
	f.Close()
	if err = os.Rename(f.Name(), output); err != nil {
		log.Error("Failed to move file", "from", f.Name(), "to", output, "error", err)
	}
	return
}
