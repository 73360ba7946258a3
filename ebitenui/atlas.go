package ebitenui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Alia5/vtouch/gamepad"
)

// Atlas is a single texture page with named sub-rectangles.
type Atlas struct {
	page    *ebiten.Image
	regions map[gamepad.ImageID]image.Rectangle
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonAtlas struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   struct {
		Image string `json:"image"`
	} `json:"meta"`
}

func parseAtlas(data []byte) (*jsonAtlas, error) {
	var doc jsonAtlas
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse atlas JSON: %w", err)
	}
	if doc.Frames == nil {
		return nil, fmt.Errorf("atlas JSON has no \"frames\" key")
	}
	for name, f := range doc.Frames {
		if f.Rotated {
			return nil, fmt.Errorf("atlas frame %q is rotated; export without rotation", name)
		}
	}
	return &doc, nil
}

// ParseAtlas reads TexturePacker hash-format JSON and pairs it with page.
// Frame names are image ids with any file extension stripped.
func ParseAtlas(data []byte, page *ebiten.Image) (*Atlas, error) {
	doc, err := parseAtlas(data)
	if err != nil {
		return nil, err
	}
	a := &Atlas{page: page, regions: make(map[gamepad.ImageID]image.Rectangle, len(doc.Frames))}
	for name, f := range doc.Frames {
		id := gamepad.ImageID(name[:len(name)-len(filepath.Ext(name))])
		a.regions[id] = image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
	}
	return a, nil
}

// LoadAtlasFile loads a TexturePacker JSON file and the page image named in
// its meta section, resolved relative to the JSON file.
func LoadAtlasFile(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read atlas: %w", err)
	}
	doc, err := parseAtlas(data)
	if err != nil {
		return nil, err
	}
	if doc.Meta.Image == "" {
		return nil, fmt.Errorf("atlas %s names no page image", path)
	}
	page, _, err := ebitenutil.NewImageFromFile(filepath.Join(filepath.Dir(path), doc.Meta.Image))
	if err != nil {
		return nil, fmt.Errorf("load atlas page: %w", err)
	}
	return ParseAtlas(data, page)
}

// ImageSize returns the region size, or 0x0 for unknown images.
func (a *Atlas) ImageSize(img gamepad.ImageID) (float64, float64) {
	r, ok := a.regions[img]
	if !ok {
		return 0, 0
	}
	return float64(r.Dx()), float64(r.Dy())
}

// Has reports whether the atlas carries img.
func (a *Atlas) Has(img gamepad.ImageID) bool {
	_, ok := a.regions[img]
	return ok
}

var magentaImage *ebiten.Image

func magenta() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, B: 255, A: 255})
	}
	return magentaImage
}

// sub returns the image for img, or a 1x1 magenta placeholder.
func (a *Atlas) sub(img gamepad.ImageID) *ebiten.Image {
	r, ok := a.regions[img]
	if !ok || a.page == nil {
		return magenta()
	}
	return a.page.SubImage(r).(*ebiten.Image)
}
