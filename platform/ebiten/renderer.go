package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/asset"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/render2d"
)

type cachedImage struct {
	version int
	image   *ebiten.Image
}

// Renderer is a render2d.Renderer that keeps the last completed frame and
// draws it onto the ebiten screen in Game.Draw. Textures are uploaded from the
// TextureManager resource on first use and again after a reload.
type Renderer struct {
	res     *engine.Resources
	pending []render2d.RenderCommand
	frame   []render2d.RenderCommand
	images  map[asset.Handle]cachedImage

	// Drawn and Skipped count sprites of the last Draw; a sprite is skipped
	// when its texture is not loaded.
	Drawn   int
	Skipped int
}

func NewRenderer(res *engine.Resources) *Renderer {
	return &Renderer{
		res:    res,
		images: make(map[asset.Handle]cachedImage),
	}
}

func (r *Renderer) BeginFrame() {
	r.pending = r.pending[:0]
}

func (r *Renderer) Submit(cmd render2d.RenderCommand) {
	r.pending = append(r.pending, cmd)
}

func (r *Renderer) EndFrame() {
	r.frame, r.pending = r.pending, r.frame
}

// Draw replays the last completed frame onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.Drawn, r.Skipped = 0, 0
	var camera *render2d.Camera2D

	for _, cmd := range r.frame {
		switch c := cmd.(type) {
		case render2d.SetCamera:
			cam := c.Camera
			camera = &cam

		case render2d.DrawSprite:
			img := r.image(c.Sprite.Texture)
			if img == nil {
				r.Skipped++
				continue
			}

			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Translate(-c.Sprite.Pivot.X*float64(w), -c.Sprite.Pivot.Y*float64(h))
			opts.GeoM.Concat(c.Transform.Matrix())
			if camera != nil {
				opts.GeoM.Concat(camera.ScreenMatrix())
			}
			opts.ColorScale.ScaleWithColor(c.Sprite.Tint)
			screen.DrawImage(img, opts)
			r.Drawn++
		}
	}
}

func (r *Renderer) image(h asset.Handle) *ebiten.Image {
	if !h.Valid() {
		return nil
	}
	textures, ok := engine.GetMut[asset.TextureManager](r.res)
	if !ok {
		return nil
	}
	data, ok := textures.Get(h)
	if !ok {
		if cached, ok := r.images[h]; ok {
			cached.image.Deallocate()
			delete(r.images, h)
		}
		return nil
	}

	cached, ok := r.images[h]
	if ok && cached.version == data.Version {
		return cached.image
	}
	if ok {
		cached.image.Deallocate()
	}

	img := ebiten.NewImageFromImage(data.Image())
	r.images[h] = cachedImage{version: data.Version, image: img}
	return img
}
