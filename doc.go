/*
Package dmgbg renders the static background image used to decorate a macOS
disk-image (DMG) installer window: an arrow pointing from the application icon
toward the Applications folder shortcut, with a caption underneath. The image
is produced at base resolution together with a @2x variant for high-density
displays.

The package provides a command line interface. To check the supported commands type:

	$ dmgbg --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/porua/dmgbg"
	)

	func main() {
		p := dmgbg.NewProcessor()
		p.Caption = "Drag to install"

		img, err := p.Render(1)
		if err != nil {
			log.Fatalf("error rendering the background: %v", err)
		}
		// encode img...
	}
*/
package dmgbg
