// Package asset loads textures from the configured texture directory and
// optionally reloads them when the files change on disk.
package asset

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Handle identifies a loaded texture. The zero Handle is invalid.
type Handle uint32

// Valid reports whether h could refer to a texture.
func (h Handle) Valid() bool {
	return h != 0
}

type Format int

const (
	FormatRGBA8 Format = iota
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// TextureData is a decoded texture in non-premultiplied RGBA8.
type TextureData struct {
	Width  int
	Height int
	Format Format
	Pixels []byte
	// Version increases every time the texture is reloaded.
	Version int
}

// Image wraps the pixels without copying.
func (t *TextureData) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    t.Pixels,
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

// TextureManager caches decoded textures by path relative to its directory.
// Loading the same path twice returns the same handle.
type TextureManager struct {
	dir      string
	textures *intmap.Map[Handle, *TextureData]
	byPath   map[string]Handle
	paths    map[Handle]string
	nextID   Handle
	log      *log.Logger
}

func NewTextureManager(dir string, logger *log.Logger) *TextureManager {
	if logger == nil {
		logger = log.Default()
	}
	return &TextureManager{
		dir:      dir,
		textures: intmap.New[Handle, *TextureData](32),
		byPath:   make(map[string]Handle),
		paths:    make(map[Handle]string),
		nextID:   1,
		log:      logger.WithPrefix("asset"),
	}
}

// Dir returns the directory textures are loaded from.
func (m *TextureManager) Dir() string {
	return m.dir
}

// Load decodes the texture at path, or returns the cached handle.
func (m *TextureManager) Load(path string) (Handle, error) {
	key := filepath.Clean(path)
	if h, ok := m.byPath[key]; ok {
		return h, nil
	}

	data, err := m.decode(key)
	if err != nil {
		return 0, err
	}

	h := m.nextID
	m.nextID++
	m.textures.Put(h, data)
	m.byPath[key] = h
	m.paths[h] = key
	m.log.Debug("texture loaded", "path", key, "handle", h, "width", data.Width, "height", data.Height)
	return h, nil
}

// Add stores an in-memory image under a new handle. Added textures have no
// path and are never reloaded.
func (m *TextureManager) Add(img image.Image) Handle {
	data := fromImage(img)
	h := m.nextID
	m.nextID++
	m.textures.Put(h, data)
	m.log.Debug("texture added", "handle", h, "width", data.Width, "height", data.Height)
	return h
}

// Reload decodes path again into its existing handle. It returns false when
// path was never loaded. On failure the previous pixels are kept.
func (m *TextureManager) Reload(path string) (Handle, bool, error) {
	key := filepath.Clean(path)
	h, ok := m.byPath[key]
	if !ok {
		return 0, false, nil
	}

	data, err := m.decode(key)
	if err != nil {
		return h, true, err
	}
	if old, ok := m.textures.Get(h); ok {
		data.Version = old.Version + 1
	}
	m.textures.Put(h, data)
	m.log.Info("texture reloaded", "path", key, "handle", h, "version", data.Version)
	return h, true, nil
}

func (m *TextureManager) Get(h Handle) (*TextureData, bool) {
	return m.textures.Get(h)
}

// Path returns the path a handle was loaded from.
func (m *TextureManager) Path(h Handle) (string, bool) {
	path, ok := m.paths[h]
	return path, ok
}

// Unload drops the texture. A later Load of the same path gets a new handle.
func (m *TextureManager) Unload(h Handle) bool {
	if _, ok := m.textures.Get(h); !ok {
		return false
	}
	m.textures.Del(h)
	if path, ok := m.paths[h]; ok {
		delete(m.byPath, path)
		delete(m.paths, h)
	}
	return true
}

func (m *TextureManager) LoadedCount() int {
	return m.textures.Len()
}

func (m *TextureManager) decode(path string) (*TextureData, error) {
	full := filepath.Join(m.dir, path)
	file, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return fromImage(img), nil
}

func fromImage(img image.Image) *TextureData {
	bounds := img.Bounds()
	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &TextureData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: FormatRGBA8,
		Pixels: rgba.Pix,
	}
}
