package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// palette is the look of one background or sprite key
type palette struct {
	sky, ground, detail color.RGBA
}

var backgrounds = map[string]palette{
	"range": {
		sky:    color.RGBA{R: 120, G: 130, B: 95, A: 255},
		ground: color.RGBA{R: 85, G: 107, B: 47, A: 255},
		detail: color.RGBA{R: 60, G: 72, B: 34, A: 255},
	},
	"urban": {
		sky:    color.RGBA{R: 110, G: 115, B: 120, A: 255},
		ground: color.RGBA{R: 70, G: 72, B: 75, A: 255},
		detail: color.RGBA{R: 45, G: 47, B: 50, A: 255},
	},
	"night": {
		sky:    color.RGBA{R: 16, G: 22, B: 42, A: 255},
		ground: color.RGBA{R: 24, G: 32, B: 28, A: 255},
		detail: color.RGBA{R: 40, G: 52, B: 70, A: 255},
	},
}

var sprites = map[string]palette{
	"infantry": {
		sky:    color.RGBA{R: 189, G: 183, B: 107, A: 255}, // uniform
		ground: color.RGBA{R: 110, G: 90, B: 60, A: 255},   // webbing
		detail: color.RGBA{R: 210, G: 170, B: 140, A: 255}, // face
	},
	"recon": {
		sky:    color.RGBA{R: 96, G: 110, B: 80, A: 255},
		ground: color.RGBA{R: 50, G: 55, B: 40, A: 255},
		detail: color.RGBA{R: 190, G: 150, B: 120, A: 255},
	},
	"sentry": {
		sky:    color.RGBA{R: 50, G: 55, B: 70, A: 255},
		ground: color.RGBA{R: 25, G: 28, B: 36, A: 255},
		detail: color.RGBA{R: 150, G: 120, B: 100, A: 255},
	},
}

// ImageLoader draws and caches the scene images. The art is generated so
// the binary carries no image files.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// Background returns the backdrop for key at the given size
func (l *ImageLoader) Background(key string, w, h int) (*ebiten.Image, error) {
	p, ok := backgrounds[key]
	if !ok {
		return nil, fmt.Errorf("unknown background %q", key)
	}
	cacheKey := fmt.Sprintf("bg/%s/%dx%d", key, w, h)
	if img, ok := l.cache[cacheKey]; ok {
		return img, nil
	}

	img := ebiten.NewImage(w, h)
	img.Fill(p.sky)
	horizon := float32(h) * 0.45
	vector.FillRect(img, 0, horizon, float32(w), float32(h)-horizon, p.ground, false)

	// Cover positions along the horizon
	for i := 0; i < 8; i++ {
		x := float32(w) * (float32(i)*0.13 + 0.02)
		bw := float32(w) * 0.06
		bh := float32(h) * (0.05 + float32(i%3)*0.02)
		vector.FillRect(img, x, horizon-bh, bw, bh, p.detail, false)
	}
	vector.StrokeLine(img, 0, horizon, float32(w), horizon, 3, p.detail, false)

	l.cache[cacheKey] = img
	return img, nil
}

// EntitySprite returns a silhouette for key, drawn at w by h
func (l *ImageLoader) EntitySprite(key string, w, h int) (*ebiten.Image, error) {
	p, ok := sprites[key]
	if !ok {
		return nil, fmt.Errorf("unknown entity sprite %q", key)
	}
	cacheKey := fmt.Sprintf("sprite/%s/%dx%d", key, w, h)
	if img, ok := l.cache[cacheKey]; ok {
		return img, nil
	}

	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	headR := fw * 0.14
	vector.FillCircle(img, fw/2, fh*0.12, headR, p.detail, true)
	// Helmet
	vector.FillRect(img, fw/2-headR*1.1, fh*0.12-headR*1.1, headR*2.2, headR*0.8, p.ground, true)
	// Torso
	vector.FillRect(img, fw*0.25, fh*0.22, fw*0.5, fh*0.38, p.sky, true)
	vector.FillRect(img, fw*0.25, fh*0.30, fw*0.5, fh*0.04, p.ground, true)
	// Arms
	vector.FillRect(img, fw*0.12, fh*0.23, fw*0.12, fh*0.30, p.sky, true)
	vector.FillRect(img, fw*0.76, fh*0.23, fw*0.12, fh*0.30, p.sky, true)
	// Legs
	vector.FillRect(img, fw*0.28, fh*0.60, fw*0.18, fh*0.40, p.ground, true)
	vector.FillRect(img, fw*0.54, fh*0.60, fw*0.18, fh*0.40, p.ground, true)

	l.cache[cacheKey] = img
	return img, nil
}
