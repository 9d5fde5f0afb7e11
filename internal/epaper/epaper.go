// Package epaper drives the Waveshare 2.13" V4 HAT as a frame sink.
//
// The panel is wired in portrait (122x250); frames arrive in landscape
// (250x122) and are rotated 90 degrees on the way in. The panel is
// black and white only, so the red plane is merged into black ink.
package epaper

import (
	"fmt"
	"image/color"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"

	"github.com/oxonbus/busboard/internal/render"
)

// Display is the physical e-paper panel.
type Display struct {
	port spi.PortCloser
	dev  *waveshare2in13v4.Dev
}

// Open initializes the host drivers and opens the SPI-attached panel.
func Open() (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open spi: %w", err)
	}

	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("open panel: %w", err)
	}

	return &Display{port: port, dev: dev}, nil
}

// Init wakes the panel and clears it to white. Called once at startup
// and again after every Sleep.
func (d *Display) Init() error {
	if err := d.dev.Init(); err != nil {
		return fmt.Errorf("panel init: %w", err)
	}
	if err := d.dev.Clear(color.White); err != nil {
		return fmt.Errorf("panel clear: %w", err)
	}
	return nil
}

// Render pushes one frame to the panel.
func (d *Display) Render(f render.Frame) error {
	img := image1bit.NewVerticalLSB(d.dev.Bounds())
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Portrait (x, y) maps to landscape (y, Height-1-x),
			// a 90-degree clockwise rotation.
			sx, sy := y, render.Height-1-x
			if f.Black.Ink(sx, sy) || f.Red.Ink(sx, sy) {
				img.SetBit(x, y, image1bit.Off)
			} else {
				img.SetBit(x, y, image1bit.On)
			}
		}
	}
	if err := d.dev.Draw(d.dev.Bounds(), img, b.Min); err != nil {
		return fmt.Errorf("panel draw: %w", err)
	}
	return nil
}

// Sleep puts the panel into deep sleep. Init must be called before the
// next Render.
func (d *Display) Sleep() error {
	return d.dev.Sleep()
}

// Close halts the panel and releases the SPI port.
func (d *Display) Close() error {
	err := d.dev.Halt()
	if cerr := d.port.Close(); err == nil {
		err = cerr
	}
	return err
}
