package main

import (
	"flag"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/trucxanh/config"
)

const (
	fontSize   = 36
	panelSize  = 48
	panelInset = 12
)

func loadConfig() config.Config {
	path := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatalf("config %s: %v", *path, err)
	}
	log.SetLevel(cfg.Level())
	return cfg
}

func loadFont() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    fontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// newPanel builds the white rounded square every card and button is stretched from.
func newPanel() *Nine {
	src := image.NewRGBA(image.Rect(0, 0, panelSize, panelSize))
	r := float64(panelInset)
	for y := 0; y < panelSize; y++ {
		for x := 0; x < panelSize; x++ {
			if insideRounded(float64(x)+.5, float64(y)+.5, panelSize, r) {
				src.Set(x, y, color.White)
			}
		}
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	return &Nine{
		images:    img,
		alpha:     1,
		Scale:     1,
		positions: [4][2]int{{0, 0}, {panelInset, panelInset}, {panelSize - panelInset, panelSize - panelInset}, {panelSize, panelSize}},
	}
}

func insideRounded(x, y, size, r float64) bool {
	cx, cy := x, y
	if x < r {
		cx = r
	} else if x > size-r {
		cx = size - r
	}
	if y < r {
		cy = r
	} else if y > size-r {
		cy = size - r
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
