package client

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	dir = "assets"

	fontSize = 44
	fontDPI  = 72
)

type Assets struct {
	images map[string]*ebiten.Image
	fonts  map[string]font.Face
}

func (a *Assets) Image(name string) *ebiten.Image {
	image := a.images[name]
	if image == nil {
		log.Fatalf("invalid image name: %s", name)
	}
	return image
}

func (a *Assets) Font(name string) font.Face {
	face := a.fonts[name]
	if face == nil {
		log.Fatalf("invalid font name: %s", name)
	}
	return face
}

// LoadAssets reads every texture and font under the assets directory.
// A missing or undecodable file aborts startup; nothing is retried.
func LoadAssets() (*Assets, error) {
	a := &Assets{
		images: make(map[string]*ebiten.Image),
		fonts:  make(map[string]font.Face),
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}

		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		switch filepath.Ext(strings.ToLower(f.Name())) {
		case ".png":
			if _, ok := a.images[name]; ok {
				return nil, fmt.Errorf("duplicate filename: %s", name)
			}

			file, err := os.Open(filepath.Join(dir, f.Name()))
			if err != nil {
				return nil, err
			}
			decoded, _, err := image.Decode(file)
			file.Close()
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", f.Name(), err)
			}
			a.images[name] = ebiten.NewImageFromImage(decoded)
		case ".ttf":
			if _, ok := a.fonts[name]; ok {
				return nil, fmt.Errorf("duplicate filename: %s", name)
			}

			contents, err := os.ReadFile(filepath.Join(dir, f.Name()))
			if err != nil {
				return nil, err
			}
			parsed, err := opentype.Parse(contents)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", f.Name(), err)
			}
			face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
				Size:    fontSize,
				DPI:     fontDPI,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return nil, err
			}
			a.fonts[name] = face
		}
	}
	return a, nil
}
