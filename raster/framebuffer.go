package raster

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

const clearDepth = float32(math.MaxFloat32)

// Framebuffer is a float RGBA color target with a matching depth buffer.
// Coordinates are in pixels, origin at the top-left.
type Framebuffer struct {
	width  int
	height int
	color  []mgl32.Vec4
	depth  []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("raster: framebuffer dimensions must be positive")
	}
	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]mgl32.Vec4, width*height),
		depth:  make([]float32, width*height),
	}
	fb.ClearDepth()
	return fb
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Clear fills the color buffer with c.
func (f *Framebuffer) Clear(c mgl32.Vec4) {
	for i := range f.color {
		f.color[i] = c
	}
}

// ClearDepth resets every depth sample so any fragment passes the test.
func (f *Framebuffer) ClearDepth() {
	for i := range f.depth {
		f.depth[i] = clearDepth
	}
}

// At returns the color at pixel (x, y). Out-of-bounds access panics like a
// slice index would.
func (f *Framebuffer) At(x, y int) mgl32.Vec4 {
	return f.color[y*f.width+x]
}

func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.depth[y*f.width+x]
}

// Image converts the float color buffer to 8-bit RGBA, clamping each
// component to [0, 1].
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.color[y*f.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: clampByte(c[0]),
				G: clampByte(c[1]),
				B: clampByte(c[2]),
				A: clampByte(c[3]),
			})
		}
	}
	return img
}

// Resolve downsamples the framebuffer by factor, averaging the extra
// samples away. A framebuffer rendered at factor times the target size
// resolves to an antialiased image of the target size.
func (f *Framebuffer) Resolve(factor int) *image.RGBA {
	src := f.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, f.width/factor, f.height/factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func clampByte(v float32) uint8 {
	scaled := v * 255
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled + 0.5)
}
