// Package host presents an Emulator in a Fyne window, taking keyboard
// input from Fyne's key-down/key-up callbacks (SDL2 only pumps events) and
// upscaling each rendered frame with x/image/draw.
// There is no audio device here: sound is outside this module's scope.
package host

import (
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/nullobject/rygar/internal/emulator"
	"github.com/nullobject/rygar/internal/input"
)

// frameWidth and frameHeight are the compositor's fixed output size.
const (
	frameWidth  = 256
	frameHeight = 224
)

// Window wraps a Fyne application/window around an Emulator, driving its
// RunFrame loop at a fixed 60Hz cadence and translating host input into the
// machine's joystick/buttons/sys latches.
type Window struct {
	app    fyne.App
	window fyne.Window

	emu   *emulator.Emulator
	input *input.Translator

	scale      int
	screen     *canvas.Image
	status     *widget.Label
	scaled     *image.RGBA
	frameCount int

	running bool
}

// New builds a Window presenting emu at the given integer scale factor.
func New(emu *emulator.Emulator, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("rygar: failed to initialize SDL: %w", err)
	}

	fyneApp := app.NewWithID("com.nullobject.rygar")
	window := fyneApp.NewWindow("Rygar")

	status := widget.NewLabel("Frame: 0")
	scaled := image.NewRGBA(image.Rect(0, 0, frameWidth*scale, frameHeight*scale))
	screen := canvas.NewImageFromImage(scaled)
	screen.FillMode = canvas.ImageFillContain

	w := &Window{
		app:    fyneApp,
		window: window,
		emu:    emu,
		input:  input.NewTranslator(emu.Machine),
		scale:  scale,
		screen: screen,
		status: status,
		scaled: scaled,
	}

	content := container.NewBorder(nil, status, nil, nil, screen)
	window.SetContent(content)
	window.Resize(fyne.NewSize(float32(frameWidth*scale), float32(frameHeight*scale)+32))
	window.CenterOnScreen()

	setupKeyboard(window, w)

	return w, nil
}

// setupKeyboard wires Fyne's desktop key-down/key-up callbacks to the
// input translator, the same down/up edge model the machine's latches
// expect.
func setupKeyboard(window fyne.Window, w *Window) {
	window.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) {})
	if c, ok := window.Canvas().(interface {
		SetOnKeyDown(func(*fyne.KeyEvent))
		SetOnKeyUp(func(*fyne.KeyEvent))
	}); ok {
		c.SetOnKeyDown(func(ev *fyne.KeyEvent) { w.input.KeyDown(ev.Name) })
		c.SetOnKeyUp(func(ev *fyne.KeyEvent) { w.input.KeyUp(ev.Name) })
	}
}

// Run starts the emulation/render loop and blocks until the window closes.
func (w *Window) Run() error {
	w.running = true
	go w.loop()
	w.window.ShowAndRun()
	w.running = false
	return nil
}

// loop drives the emulator at a fixed 60Hz cadence, rendering and
// upscaling each frame onto the canvas image.
func (w *Window) loop() {
	const hz = 60
	ticker := time.NewTicker(time.Second / hz)
	defer ticker.Stop()

	for w.running {
		<-ticker.C
		sdl.PumpEvents()

		frame := w.emu.RunFrame(1.0 / hz)
		w.frameCount++

		draw.CatmullRom.Scale(w.scaled, w.scaled.Bounds(), frame, frame.Bounds(), draw.Over, nil)

		frameCount := w.frameCount
		fyne.Do(func() {
			w.screen.Refresh()
			w.status.SetText(fmt.Sprintf("Frame: %d", frameCount))
		})
	}
}

// Close releases SDL resources. Call after the window has closed.
func (w *Window) Close() {
	sdl.Quit()
}
