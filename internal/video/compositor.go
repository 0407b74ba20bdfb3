// Package video implements the per-frame compositor: it clears and fills
// the indexed working bitmap, draws the tile layers and sprites
// back-to-front, then resolves the visible 256x224 window through the
// palette cache into an RGBA8888 framebuffer.
package video

import (
	"image"

	"github.com/nullobject/rygar/internal/indexed"
	"github.com/nullobject/rygar/internal/palette"
	"github.com/nullobject/rygar/internal/sprite"
	"github.com/nullobject/rygar/internal/tile"
	"github.com/nullobject/rygar/internal/tilemap"
)

// Visible frame geometry.
const (
	FrameWidth  = 256
	FrameHeight = 224

	bitmapWidth    = 256
	bitmapHeight   = 256
	visibleYOffset = 16

	bgPaletteBase   = 0x300
	fgPaletteBase   = 0x200
	charPaletteBase = 0x100
	spritePaletteBase = 0x000

	bgTag     = 3
	fgTag     = 2
	charTag   = 1
	spriteTag = 0

	backgroundFillIndex = 0x100
)

// Layers bundles the render-time view of machine state the compositor
// needs once per frame: the three tilemaps and the sprite RAM snapshot.
type Layers struct {
	Bg, Fg, Char *tilemap.Tilemap
	Sprites      []sprite.Descriptor
	SpriteSheet  *tile.Sheet
}

// Compositor owns the working indexed bitmap and output framebuffer so
// Render never allocates.
type Compositor struct {
	indexed *indexed.Bitmap
	frame   *image.RGBA
}

// NewCompositor allocates a Compositor's fixed-size working buffers.
func NewCompositor() *Compositor {
	return &Compositor{
		indexed: indexed.NewBitmap(bitmapWidth, bitmapHeight),
		frame:   image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight)),
	}
}

// Render draws one frame from layers and pal, and returns the compositor's
// owned framebuffer. The returned image is reused across calls; callers
// that need to retain a frame must copy it.
func (c *Compositor) Render(layers Layers, pal *palette.Cache) *image.RGBA {
	c.indexed.Fill(indexed.Pack(backgroundFillIndex, bgTag))

	layers.Bg.Draw(c.indexed, bgPaletteBase, bgTag)
	layers.Fg.Draw(c.indexed, fgPaletteBase, fgTag)
	layers.Char.Draw(c.indexed, charPaletteBase, charTag)
	sprite.Draw(c.indexed, layers.Sprites, layers.SpriteSheet, spritePaletteBase)

	for y := 0; y < FrameHeight; y++ {
		srcY := y + visibleYOffset
		for x := 0; x < FrameWidth; x++ {
			idx := indexed.PaletteIndex(c.indexed.At(x, srcY))
			packed := pal.Entry(idx)

			off := c.frame.PixOffset(x, y)
			c.frame.Pix[off+0] = byte(packed)
			c.frame.Pix[off+1] = byte(packed >> 8)
			c.frame.Pix[off+2] = byte(packed >> 16)
			c.frame.Pix[off+3] = byte(packed >> 24)
		}
	}

	return c.frame
}
