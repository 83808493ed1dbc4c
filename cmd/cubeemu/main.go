// Command cubeemu is a live debug viewer for a cube's Hardware state: an
// SDL window rendering the graphics bus, address latches, and backlight as
// they change, driven by a small built-in pin-toggling loop since the
// actual 8051 instruction interpreter that would normally drive the SFR
// writes is an external collaborator outside this module's scope.
//
// Adapted from vcs_main.go's flag/pprof/sdl.Main wiring.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/cubecore/cubehw/hardware"
	"github.com/cubecore/cubehw/sfr"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	debug   = flag.Bool("debug", false, "If true, emit verbose hardware exception tracing")
	port    = flag.Int("port", 6061, "Port to run the HTTP server for pprof")
	scale   = flag.Int("scale", 3, "Scale factor for the debug window")
	nvmSize = flag.Int("nvm_size", hardware.DefaultNVMSize, "Size in bytes of the simulated NVM region")
	hwid    = flag.Uint64("hwid", 0x0102030405060708, "HWID to program into NVM at startup")
)

const (
	panelWidth  = 320
	panelHeight = 240
)

// fakeClock is a free-running cycle counter; cubeemu has no CPU interpreter
// of its own, so it just advances time on every redraw.
type fakeClock struct {
	clocks uint64
}

func (c *fakeClock) Clocks() uint64 { return c.clocks }

type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) Set(x, y int, c color.Color) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	r, g, b, a := c.RGBA()
	f.data[i+0] = uint8(b >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(r >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func (f *fastImage) ColorModel() color.Model { return f.surface.ColorModel() }
func (f *fastImage) Bounds() image.Rectangle { return f.surface.Bounds() }
func (f *fastImage) At(x, y int) color.Color { return f.surface.At(x, y) }

// demoTick pulses the graphics bus port registers through a short pattern,
// standing in for the external CPU interpreter's SFR writes so the viewer
// has something to render.
func demoTick(h *hardware.Hardware, frame uint64) {
	addr := uint8(frame & 0xFE)
	h.SFRWrite(sfr.AddrPortDir, 0x00)
	h.SFRWrite(sfr.AddrPort, addr)
	h.SFRWrite(sfr.CtrlPortDir, 0x00)
	if frame%2 == 0 {
		h.SFRWrite(sfr.CtrlPort, sfr.CtrlFlashLAT1|sfr.Ctrl3V3En|sfr.CtrlLCDDCX)
	} else {
		h.SFRWrite(sfr.CtrlPort, 0x00)
	}
}

func render(img draw.Image, h *hardware.Hardware, face font.Face) {
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{20, 20, 24, 255}), image.Point{}, draw.Src)

	lines := []string{
		fmt.Sprintf("HWID:     %016X", h.GetHWID()),
		fmt.Sprintf("LAT1/LAT2: %02X / %02X", h.LAT1(), h.LAT2()),
		fmt.Sprintf("BUS:      %02X", h.Bus()),
		fmt.Sprintf("BACKLIGHT: %v", h.Backlight().Lit()),
		fmt.Sprintf("EXCEPTIONS: %d", h.GetExceptionCount()),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{200, 255, 200, 255}),
		Face: face,
	}
	y := 20
	for _, line := range lines {
		d.Dot = fixed.P(10, y)
		d.DrawString(line)
		y += 16
	}

	if h.Backlight().Lit() {
		lit := image.Rect(panelWidth-40, 10, panelWidth-10, 40)
		draw.Draw(img, lit, image.NewUniform(color.RGBA{255, 240, 140, 255}), image.Point{}, draw.Src)
	}
}

func main() {
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", *port), nil))
	}()

	clock := &fakeClock{}
	h, err := hardware.Init(&hardware.Def{
		ID:      0,
		Timer:   clock,
		NVMSize: *nvmSize,
		Verbose: *debug,
	})
	if err != nil {
		log.Fatalf("Can't init hardware: %v", err)
	}

	h.SFRWrite(sfr.FSR, sfr.FSRWriteEnable)
	for i := 0; i < 8; i++ {
		if _, err := h.NVMWrite(0, uint16(i), uint8(*hwid>>(8*i))); err != nil {
			log.Fatalf("Can't program HWID byte %d: %v", i, err)
		}
	}

	sdl.Main(func() {
		if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
			log.Fatalf("Can't init SDL: %v", err)
		}
		defer sdl.Quit()

		window, err := sdl.CreateWindow("cubeemu", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(panelWidth**scale), int32(panelHeight**scale), sdl.WINDOW_SHOWN)
		if err != nil {
			log.Fatalf("Can't create window: %v", err)
		}
		defer window.Destroy()

		surface, err := window.GetSurface()
		if err != nil {
			log.Fatalf("Can't get window surface: %v", err)
		}
		fi := &fastImage{surface: surface, data: surface.Pixels()}
		face := basicfont.Face7x13

		var frame uint64
		running := true
		for running {
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				if _, ok := event.(*sdl.QuitEvent); ok {
					running = false
				}
			}

			demoTick(h, frame)
			clock.clocks += 100
			h.HWDeadlineWork()

			render(fi, h, face)
			window.UpdateSurface()
			sdl.Delay(16)
			frame++
		}
	})
}
