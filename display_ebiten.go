// display_ebiten.go - ebiten-backed windowed Sink

package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// gbPalette maps the four 2-bit color indices ComposeFrame produces to a
// fixed greenish-grey palette, the classic DMG/GBC-in-monochrome-mode look.
var gbPalette = [4]color.RGBA{
	{224, 248, 208, 255},
	{136, 192, 112, 255},
	{52, 104, 86, 255},
	{8, 24, 32, 255},
}

// EbitenSink is a real window backed by github.com/hajimehoshi/ebiten/v2,
// mirroring the headless/windowed backend split of the teacher's own
// video_backend_ebiten.go / video_backend_headless.go pair. It implements
// Sink directly; the ebiten.Game plumbing lives on the unexported
// ebitenGame delegate below so Sink's Update(mem) and ebiten.Game's
// Update() error don't collide.
type EbitenSink struct {
	mu    sync.Mutex
	frame Frame
}

// NewEbitenSink returns a Sink that draws composed frames into a real
// window. Run must be called (typically from main, on the OS's main
// thread) to pump the ebiten event loop; Update only stores the latest
// composed frame for the next Draw call.
func NewEbitenSink() *EbitenSink {
	return &EbitenSink{}
}

func (s *EbitenSink) Update(mem *Memory) {
	s.mu.Lock()
	s.frame = ComposeFrame(mem)
	s.mu.Unlock()
}

func (s *EbitenSink) currentFrame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Run starts the ebiten window and blocks until it is closed. Call it
// from main after starting the Scheduler on its own goroutine.
func (s *EbitenSink) Run(title string) error {
	ebiten.SetWindowSize(ScreenWidth*4, ScreenHeight*4)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(&ebitenGame{sink: s})
}

// ebitenGame adapts an EbitenSink to the ebiten.Game interface.
type ebitenGame struct {
	sink *EbitenSink
}

func (g *ebitenGame) Update() error { return nil }

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	frame := g.sink.currentFrame()
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			screen.Set(x, y, gbPalette[frame[y][x]])
		}
	}
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
