package raster

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFramebuffer_ClearAndAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	c := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	fb.Clear(c)

	if got := fb.At(0, 0); got != c {
		t.Errorf("At(0,0) = %v, want %v", got, c)
	}
	if got := fb.At(3, 2); got != c {
		t.Errorf("At(3,2) = %v, want %v", got, c)
	}
	if fb.Width() != 4 || fb.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", fb.Width(), fb.Height())
	}
}

func TestFramebuffer_ClearDepth(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	DrawTriangle(fb, fullScreenTriangle(0), solid(mgl32.Vec4{1, 0, 0, 1}), DefaultOptions())
	if fb.DepthAt(1, 1) >= clearDepth {
		t.Fatal("draw did not record depth")
	}

	fb.ClearDepth()
	if fb.DepthAt(1, 1) != clearDepth {
		t.Errorf("depth not reset: %f", fb.DepthAt(1, 1))
	}
}

func TestFramebuffer_ImageClamps(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.color[0] = mgl32.Vec4{2, -1, 0.5, 1}
	fb.color[1] = mgl32.Vec4{0, 1, 0.25, 1}

	img := fb.Image()
	p0 := img.RGBAAt(0, 0)
	if p0.R != 255 || p0.G != 0 {
		t.Errorf("out-of-range components not clamped: %v", p0)
	}
	p1 := img.RGBAAt(1, 0)
	if p1.G != 255 || p1.B != 64 {
		t.Errorf("conversion off: %v", p1)
	}
	if p0.A != 255 || p1.A != 255 {
		t.Errorf("alpha not preserved: %v %v", p0, p1)
	}
}

func TestFramebuffer_Resolve(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(mgl32.Vec4{1, 1, 1, 1})

	img := fb.Resolve(2)
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("resolved bounds = %v, want 4x4", img.Bounds())
	}
	if got := img.RGBAAt(2, 2); got.R != 255 || got.A != 255 {
		t.Errorf("resolved pixel = %v, want white", got)
	}

	// Factor 1 is the identity.
	if img := fb.Resolve(1); img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("resolve(1) changed bounds: %v", img.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(mgl32.Vec4{0, 1, 0, 1})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, fb.Image()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty file")
	}
}
