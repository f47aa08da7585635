package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window of the given canvas size and calls
// frame once per tick, presenting the returned canvas. It blocks until the
// window closes or frame fails.
func RunWindow(title string, width, height int, frame func() (*image.RGBA, error)) error {
	g := &windowGame{width: width, height: height, frame: frame}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type windowGame struct {
	width  int
	height int
	frame  func() (*image.RGBA, error)
	img    *image.RGBA
	fbImg  *ebiten.Image
}

func (g *windowGame) Update() error {
	img, err := g.frame()
	if err != nil {
		return err
	}
	g.img = img
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
