package filter

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/primespiral/internal/raster"
)

// convolve2D is the direct "same"-mode zero-padded convolution used as reference.
func convolve2D(src *raster.Canvas, k [][]float32) *raster.Canvas {
	half := len(k) / 2
	dst := raster.NewCanvasLike(src)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			var sum float64
			for ky := range k {
				for kx := range k[ky] {
					// At returns 0 outside the canvas, which is the zero padding.
					sum += float64(src.At(x+kx-half, y+ky-half)) * float64(k[ky][kx])
				}
			}
			dst.Set(x, y, float32(sum))
		}
	}
	return dst
}

func randomCanvas(w, h int, seed uint64) *raster.Canvas {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	c := raster.NewCanvas(w, h)
	for i := range c.Data() {
		c.Data()[i] = rng.Float32() * 2
	}
	return c
}

func maxAbsDiff(a, b *raster.Canvas) float64 {
	var d float64
	for i := range a.Data() {
		d = math.Max(d, math.Abs(float64(a.Data()[i]-b.Data()[i])))
	}
	return d
}

func TestSmoothPreservesShape(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 20}, {20, 3}, {11, 11}, {64, 48}, {100, 100}}
	for _, s := range sizes {
		src := randomCanvas(s[0], s[1], 1)
		got, err := Smooth(context.Background(), src, DefaultRadius, 0)
		if err != nil {
			t.Fatalf("Smooth(%dx%d) error = %v", s[0], s[1], err)
		}
		if got.Width() != s[0] || got.Height() != s[1] {
			t.Errorf("Smooth(%dx%d) shape = %dx%d", s[0], s[1], got.Width(), got.Height())
		}
	}
}

func TestSmoothMatchesDirectConvolution(t *testing.T) {
	sizes := [][2]int{{1, 1}, {4, 7}, {13, 9}, {40, 33}}
	for _, s := range sizes {
		src := randomCanvas(s[0], s[1], uint64(s[0]*100+s[1]))
		want := convolve2D(src, Kernel2D(DefaultRadius))

		got, err := Smooth(context.Background(), src, DefaultRadius, 3)
		if err != nil {
			t.Fatalf("Smooth() error = %v", err)
		}
		if d := maxAbsDiff(got, want); d > 1e-4 {
			t.Errorf("Smooth(%dx%d) differs from direct convolution by %v", s[0], s[1], d)
		}
	}
}

func TestSmoothImpulseResponse(t *testing.T) {
	src := raster.NewCanvas(21, 21)
	src.Set(10, 10, 1)

	got, err := Smooth(context.Background(), src, DefaultRadius, 1)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}

	k := Kernel2D(DefaultRadius)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			var want float32
			dx, dy := x-10, y-10
			if dx >= -5 && dx <= 5 && dy >= -5 && dy <= 5 {
				want = k[dy+5][dx+5]
			}
			if diff := math.Abs(float64(got.At(x, y) - want)); diff > 1e-6 {
				t.Errorf("impulse response at (%d, %d) = %v, want %v", x, y, got.At(x, y), want)
			}
		}
	}
	if got.At(10, 10) != 1 {
		t.Errorf("impulse peak = %v, want 1", got.At(10, 10))
	}
}

func TestSmoothZeroPaddedEdges(t *testing.T) {
	// A constant field loses mass at the border: corners see only a quarter
	// of the kernel plus the center row/column.
	src := raster.NewCanvas(30, 30)
	for i := range src.Data() {
		src.Data()[i] = 1
	}

	got, err := Smooth(context.Background(), src, DefaultRadius, 0)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}

	full := kernelSum(BumpKernel(DefaultRadius))
	interior := float64(got.At(15, 15))
	if math.Abs(interior-full*full) > 1e-4 {
		t.Errorf("interior = %v, want %v", interior, full*full)
	}

	var halfSum float64
	for _, v := range BumpKernel(DefaultRadius)[5:] {
		halfSum += float64(v)
	}
	corner := float64(got.At(0, 0))
	if math.Abs(corner-halfSum*halfSum) > 1e-4 {
		t.Errorf("corner = %v, want %v", corner, halfSum*halfSum)
	}
	if corner >= interior {
		t.Errorf("corner %v should be darker than interior %v", corner, interior)
	}
}

func TestSmoothWorkerCountInvariant(t *testing.T) {
	src := randomCanvas(97, 131, 42)

	ref, err := Smooth(context.Background(), src, DefaultRadius, 1)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	for _, workers := range []int{2, 5, 16} {
		got, err := Smooth(context.Background(), src, DefaultRadius, workers)
		if err != nil {
			t.Fatalf("Smooth(workers=%d) error = %v", workers, err)
		}
		for i := range ref.Data() {
			if got.Data()[i] != ref.Data()[i] {
				t.Fatalf("Smooth(workers=%d) cell %d = %v, want %v", workers, i, got.Data()[i], ref.Data()[i])
			}
		}
	}
}

func TestSmoothZeroRadiusIsCopy(t *testing.T) {
	src := randomCanvas(8, 8, 7)
	got, err := Smooth(context.Background(), src, 0, 0)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if &got.Data()[0] == &src.Data()[0] {
		t.Error("Smooth(radius 0) returned the source buffer, want a copy")
	}
	if d := maxAbsDiff(got, src); d != 0 {
		t.Errorf("Smooth(radius 0) differs from source by %v", d)
	}
}

func TestSmoothDoesNotModifySource(t *testing.T) {
	src := randomCanvas(16, 16, 9)
	before := append([]float32(nil), src.Data()...)

	if _, err := Smooth(context.Background(), src, DefaultRadius, 0); err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	for i, v := range src.Data() {
		if v != before[i] {
			t.Fatalf("source cell %d changed from %v to %v", i, before[i], v)
		}
	}
}

func TestSmoothEmptyCanvas(t *testing.T) {
	got, err := Smooth(context.Background(), raster.NewCanvas(0, 0), DefaultRadius, 0)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("Smooth(empty) shape = %dx%d, want 0x0", got.Width(), got.Height())
	}
}

func TestSmoothCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Smooth(ctx, randomCanvas(64, 64, 3), DefaultRadius, 2); err == nil {
		t.Error("Smooth() on canceled context returned nil error")
	}
}

func BenchmarkSmooth(b *testing.B) {
	src := randomCanvas(1024, 1024, 1)
	ctx := context.Background()

	for b.Loop() {
		_, _ = Smooth(ctx, src, DefaultRadius, 0)
	}
}
