package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/philocalyst/fweh"
	"github.com/sunshineplan/utils/log"
	"github.com/sunshineplan/utils/progressbar"
	"github.com/sunshineplan/utils/workers"
	"github.com/vharitonsky/iniflags"
)

var (
	src             = flag.String("src", "", "")
	dst             = flag.String("dst", "output", "")
	force           = flag.Bool("force", false, "")
	format          = flag.String("format", "png", "")
	quality         = flag.Int("quality", 75, "")
	scale           = flag.Float64("scale", 110, "")
	roundness       = flag.Float64("roundness", 0, "")
	offset          = flag.String("offset", "0,0", "")
	background      = flag.String("background", "colr:black", "")
	ratio           = flag.String("ratio", "", "")
	shadowOffset    = flag.String("shadow-offset", "", "")
	shadowColor     = flag.String("shadow-color", "black", "")
	shadowRadius    = flag.Float64("shadow-radius", 25, "")
	shadowOpacity   = flag.Float64("shadow-opacity", 1, "")
	width           = flag.Int("width", 0, "")
	height          = flag.Int("height", 0, "")
	percent         = flag.Float64("percent", 0, "")
	worker          = flag.Int("worker", 5, "")
	autoOrientation = flag.Bool("auto-orientation", true, "")
	quiet           = flag.Bool("quiet", false, "")
	debug           = flag.Bool("debug", false, "")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --src
		source file or directory
  --dst
		destination directory (default: output)
  --force
		force overwrite (default: false)
  --format
		output format (jpg, jpeg, png, gif, tif, tiff and bmp are supported, default: png)
  --quality
		set jpeg quality (range 1-100, default: 75)
  --scale
		canvas scale percentage, 100 means no margin (default: 110)
  --roundness
		corner radius percentage (range 0-100, default: 0)
  --offset
		image offset from center in pixels, x right and y up (e.g. 10,-20, default: 0,0)
  --background
		background value: colr:<color>, grad:<color-color-...> or imag:<path> (default: colr:black)
  --ratio
		target aspect ratio (e.g. 16:9, default: keep source ratio)
  --shadow-offset
		shadow offset in pixels, enables the drop shadow (e.g. 25,25)
  --shadow-color
		shadow color (default: black)
  --shadow-radius
		shadow blur radius (default: 25)
  --shadow-opacity
		shadow opacity (range 0-1, default: 1)
  --width
		pre-resize width, if one of width or height is 0, the image aspect ratio is preserved.
  --height
		pre-resize height, if one of width or height is 0, the image aspect ratio is preserved.
  --percent
		pre-resize percent, only when both of width and height are 0.`)
}

func main() {
	var code int
	defer func() {
		os.Exit(code)
	}()

	self, err := os.Executable()
	if err != nil {
		log.Error("Failed to get self path", "error", err)
		code = 1
		return
	}

	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	task := fweh.NewOptions()
	if err := buildOptions(&task); err != nil {
		log.Error("Bad arguments", "error", err)
		code = 1
		return
	}

	srcInfo, err := os.Stat(*src)
	if err != nil {
		log.Error("Failed to access source", "src", *src, "error", err)
		code = 1
		return
	}
	if err := prepareDst(*dst); err != nil {
		log.Error("Failed to prepare destination", "dst", *dst, "error", err)
		code = 1
		return
	}

	switch mode := srcInfo.Mode(); {
	case mode.IsDir():
		images := loadImages(*src)
		total := len(images)
		log.Info("Total images", "count", total)

		pb := progressbar.New(total)
		if !*quiet {
			pb.Start()
		}
		workers.RunSlice(*worker, images, func(_ int, i string) {
			if !*quiet {
				defer pb.Add(1)
			}
			rel, err := filepath.Rel(*src, i)
			if err != nil {
				log.Error("Failed to resolve path", "image", i, "error", err)
				return
			}
			if err := convert(&task, i, task.ConvertExt(filepath.Join(*dst, rel)), *force); err != nil {
				if errors.Is(err, errSkip) {
					log.Info("Skip", "image", i)
				}
				return
			}
			if *debug {
				log.Debug("Framed", "image", i)
			}
		})
		if !*quiet {
			pb.Done()
		}

	case mode.IsRegular():
		output := task.ConvertExt(filepath.Join(*dst, filepath.Base(*src)))
		if err := convert(&task, *src, output, *force); err != nil {
			if errors.Is(err, errSkip) {
				log.Error("Destination already exist", "output", output)
			}
			code = 1
			return
		}
		fmt.Println(output)

	default:
		log.Error("Unknown source", "src", *src)
		code = 1
		return
	}
	log.Info("Done.")
}

func prepareDst(dst string) error {
	info, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.MkdirAll(dst, 0755)
		}
		return err
	}
	if !info.Mode().IsDir() {
		return errors.New("destination is not a directory")
	}
	return nil
}
