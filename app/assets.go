package app

import (
	_ "embed"

	"github.com/dextero/evil-android/sprite"
)

// Regenerate with:
//
//	go run ./cmd/mksprite -in art/dumpster-fire.png \
//	    -out-pix app/assets/dumpster_fire.rgb565 \
//	    -out-mask app/assets/dumpster_fire.mask

//go:embed assets/dumpster_fire.rgb565
var firePix []byte

//go:embed assets/dumpster_fire.mask
var fireMask []byte

const (
	fireW = 32
	fireH = 24
)

func fireSprite() *sprite.Sprite {
	s, err := sprite.New(fireW, fireH, firePix, fireMask)
	if err != nil {
		// Only reachable with a hand-mangled asset; the splash just
		// skips the sprite then.
		return nil
	}
	return s
}
