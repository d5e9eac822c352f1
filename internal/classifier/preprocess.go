package classifier

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// InputSize is the spatial resolution MobileNet was trained on.
const InputSize = 224

// MaxImagePixels bounds width*height before a full decode, the same
// decompression-bomb ceiling Pillow enforces.
const MaxImagePixels = 89_478_485

// Preprocess decodes an encoded image and returns a 1x224x224x3 NHWC tensor,
// flattened, scaled to [-1, 1] the way Keras' MobileNet preprocess_input does.
func Preprocess(data []byte) ([]float32, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrClassification)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to decode image: %v", ErrClassification, err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, fmt.Errorf("%w: image is %dx%d, above the %d pixel limit", ErrClassification, cfg.Width, cfg.Height, MaxImagePixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to decode image: %v", ErrClassification, err)
	}

	rgb := toRGB(src)

	resized := image.NewNRGBA(image.Rect(0, 0, InputSize, InputSize))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), rgb, rgb.Bounds(), xdraw.Src, nil)

	tensor := make([]float32, 0, InputSize*InputSize*3)
	for y := 0; y < InputSize; y++ {
		row := resized.Pix[y*resized.Stride : y*resized.Stride+InputSize*4]
		for x := 0; x < InputSize; x++ {
			p := row[x*4 : x*4+3]
			tensor = append(tensor,
				float32(p[0])/127.5-1,
				float32(p[1])/127.5-1,
				float32(p[2])/127.5-1,
			)
		}
	}

	return tensor, nil
}

// toRGB drops the alpha channel without compositing, keeping the
// straight (non-premultiplied) colour of every pixel.
func toRGB(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}

	return dst
}
