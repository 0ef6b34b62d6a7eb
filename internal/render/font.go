package render

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/example/inkshot/internal/style"
)

var fontFaces map[style.Size]font.Face
var toastFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	fontFaces = make(map[style.Size]font.Face, 3)
	for _, sz := range []style.Size{style.Small, style.Medium, style.Large} {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: sz.TextSize(), DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Fatalf("font face: %v", err)
		}
		fontFaces[sz] = face
	}
	toastFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// Face returns the shared font face for a size class.
func Face(sz style.Size) font.Face { return fontFaces[sz] }

// ToastFace is the face used for transient status messages.
func ToastFace() font.Face { return toastFace }
