package imagery

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const (
	placeholderWidth  = 600
	placeholderHeight = 400
)

var (
	placeholderOnce sync.Once
	placeholderData []byte
)

// Placeholder returns the embedded fallback image shown when a region photo
// cannot be fetched: a stylized field under sky, encoded as PNG. The bytes
// are rendered once and shared; callers must not mutate them.
func Placeholder() []byte {
	placeholderOnce.Do(func() {
		sky := color.RGBA{R: 176, G: 212, B: 230, A: 255}
		field := color.RGBA{R: 106, G: 153, B: 78, A: 255}
		horizon := placeholderHeight * 2 / 5

		img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
		for y := 0; y < placeholderHeight; y++ {
			c := sky
			if y >= horizon {
				c = field
			}
			for x := 0; x < placeholderWidth; x++ {
				img.SetRGBA(x, y, c)
			}
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			// Encoding an in-memory RGBA image cannot fail with a valid
			// bounds rectangle; panic loudly if it somehow does.
			panic("imagery: encode placeholder: " + err.Error())
		}
		placeholderData = buf.Bytes()
	})
	return placeholderData
}
