package raylib

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/asset"
	"github.com/plus3/frameloop/engine"
	"github.com/plus3/frameloop/render2d"
)

type cachedTexture struct {
	version int
	texture rl.Texture2D
}

// Renderer is a render2d.Renderer that keeps the last completed frame and
// draws it between BeginDrawing and EndDrawing. Textures are uploaded to the
// GPU from the TextureManager resource on first use and again after a reload.
type Renderer struct {
	res        *engine.Resources
	pending    []render2d.RenderCommand
	frame      []render2d.RenderCommand
	textures   map[asset.Handle]cachedTexture
	Background color.RGBA

	Drawn   int
	Skipped int
}

func NewRenderer(res *engine.Resources) *Renderer {
	return &Renderer{
		res:        res,
		textures:   make(map[asset.Handle]cachedTexture),
		Background: color.RGBA{A: 0xff},
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

// Draw replays the last completed frame. It must run on the window thread.
func (r *Renderer) Draw() {
	r.Drawn, r.Skipped = 0, 0
	var camera *render2d.Camera2D

	rl.BeginDrawing()
	rl.ClearBackground(r.Background)

	for _, cmd := range r.frame {
		switch c := cmd.(type) {
		case render2d.SetCamera:
			cam := c.Camera
			camera = &cam

		case render2d.DrawSprite:
			tex, ok := r.texture(c.Sprite.Texture)
			if !ok {
				r.Skipped++
				continue
			}

			m := c.Transform.Matrix()
			if camera != nil {
				m.Concat(camera.ScreenMatrix())
			}
			drawTexture(tex, m, c.Sprite)
			r.Drawn++
		}
	}

	rl.EndDrawing()
}

// Close releases every uploaded texture.
func (r *Renderer) Close() {
	for h, cached := range r.textures {
		rl.UnloadTexture(cached.texture)
		delete(r.textures, h)
	}
}

// Placement is a sprite's screen position, rotation in degrees and scale,
// decomposed from its world-to-screen matrix.
type Placement struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Decompose splits an affine matrix without shear into translation,
// rotation and scale. A mirrored matrix reports a negative ScaleY.
func Decompose(m ebiten.GeoM) Placement {
	a, b := m.Element(0, 0), m.Element(0, 1)
	c, d := m.Element(1, 0), m.Element(1, 1)
	tx, ty := m.Element(0, 2), m.Element(1, 2)

	sx := math.Hypot(a, c)
	sy := 0.0
	if sx != 0 {
		sy = (a*d - b*c) / sx
	}
	return Placement{
		X:        tx,
		Y:        ty,
		Rotation: math.Atan2(c, a) * 180 / math.Pi,
		ScaleX:   sx,
		ScaleY:   sy,
	}
}

func drawTexture(tex rl.Texture2D, m ebiten.GeoM, sprite render2d.Sprite) {
	p := Decompose(m)
	w, h := float64(tex.Width), float64(tex.Height)

	src := rl.NewRectangle(0, 0, float32(w), float32(h))
	if p.ScaleY < 0 {
		src.Height = -src.Height
		p.ScaleY = -p.ScaleY
	}

	dw, dh := w*p.ScaleX, h*p.ScaleY
	dst := rl.NewRectangle(float32(p.X), float32(p.Y), float32(dw), float32(dh))
	origin := rl.NewVector2(float32(sprite.Pivot.X*dw), float32(sprite.Pivot.Y*dh))
	rl.DrawTexturePro(tex, src, dst, origin, float32(p.Rotation), sprite.Tint)
}

func (r *Renderer) texture(h asset.Handle) (rl.Texture2D, bool) {
	if !h.Valid() {
		return rl.Texture2D{}, false
	}
	textures, ok := engine.GetMut[asset.TextureManager](r.res)
	if !ok {
		return rl.Texture2D{}, false
	}
	data, ok := textures.Get(h)
	if !ok {
		if cached, ok := r.textures[h]; ok {
			rl.UnloadTexture(cached.texture)
			delete(r.textures, h)
		}
		return rl.Texture2D{}, false
	}

	cached, ok := r.textures[h]
	if ok && cached.version == data.Version {
		return cached.texture, true
	}
	if ok {
		rl.UnloadTexture(cached.texture)
	}

	img := rl.NewImageFromImage(data.Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.textures[h] = cachedTexture{version: data.Version, texture: tex}
	return tex, true
}
