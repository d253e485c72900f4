package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/porua/dmgbg"
	"github.com/porua/dmgbg/utils"
)

const helpBanner = `
┌┬┐┌┬┐┌─┐┌┐ ┌─┐
 │││││││ ┬├┴┐│ ┬
─┴┘┴ ┴└─┘└─┘└─┘

DMG installer background generator.
    Version: %s

`

// pipeName is the output name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir   = flag.String("out", ".", "Output directory or `-` to stream the base image to stdout")
	name     = flag.String("name", "dmg-background", "Base name of the generated files")
	format   = flag.String("format", "png", "Output image format (png, jpg, bmp)")
	caption  = flag.String("caption", "Drag to install", "Caption text drawn below the arrow")
	fontPath = flag.String("font", dmgbg.DefaultFontPath, "TrueType/OpenType font used for the caption")
	fontSize = flag.Float64("size", 14, "Caption font size at base resolution")
	width    = flag.Int("width", 660, "Canvas width at base resolution")
	height   = flag.Int("height", 400, "Canvas height at base resolution")
	bgColor  = flag.String("bg", "#f0f0f5", "Background color (hex)")
	stroke   = flag.String("stroke", "#9696a0", "Arrow color (hex)")
	capColor = flag.String("color", "#64646e", "Caption color (hex)")
	retina   = flag.Bool("retina", true, "Generate the @2x variant as well")
	debug    = flag.Bool("debug", false, "Draw the icon slot placement guides")
	preview  = flag.Bool("preview", false, "Show the generated background in a window")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	validFormats := []string{"png", "jpg", "jpeg", "bmp"}
	if !utils.Contains(validFormats, *format) {
		log.Fatalf(utils.DecorateText(fmt.Sprintf("%v file type not supported\n", *format), utils.ErrorMessage))
	}

	proc := dmgbg.NewProcessor()
	proc.Caption = *caption
	proc.FontPath = *fontPath
	proc.FontSize = *fontSize
	proc.Debug = *debug
	proc.Preview = *preview
	proc.Layout.Width = *width
	proc.Layout.Height = *height

	var err error
	if proc.Background, err = utils.HexToRGBA(*bgColor); err != nil {
		log.Fatalf(utils.DecorateText("Invalid background color: %v\n", utils.ErrorMessage), err)
	}
	if proc.StrokeColor, err = utils.HexToRGBA(*stroke); err != nil {
		log.Fatalf(utils.DecorateText("Invalid arrow color: %v\n", utils.ErrorMessage), err)
	}
	if proc.CaptionColor, err = utils.HexToRGBA(*capColor); err != nil {
		log.Fatalf(utils.DecorateText("Invalid caption color: %v\n", utils.ErrorMessage), err)
	}

	op := &dmgbg.Ops{
		Dir:      *outDir,
		Name:     *name,
		Format:   *format,
		PipeName: pipeName,
		Retina:   *retina,
	}

	if proc.Preview {
		// The Gio event loop has to own the main OS thread.
		go func() {
			proc.Execute(op)
			os.Exit(0)
		}()
		app.Main()
	} else {
		proc.Execute(op)
	}
}
