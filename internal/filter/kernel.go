package filter

import (
	"math"
	"sync"
)

// DefaultRadius gives the 11-tap kernel over offsets -5..5.
const DefaultRadius = 5

// BumpKernel generates the 1D kernel exp(-z²) for z = -radius..radius.
//
// The kernel is not normalized: its peak is 1.
// For radius <= 0, returns [1.0] (identity).
func BumpKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	kernel := make([]float32, KernelSize(radius))
	for i := range kernel {
		z := float64(i - radius)
		kernel[i] = float32(math.Exp(-z * z))
	}
	return kernel
}

// Kernel2D generates the full 2D kernel exp(-(dx²+dy²)) indexed [dy][dx].
// The blur never builds it; it serves as the reference for the separable form.
func Kernel2D(radius int) [][]float32 {
	if radius < 0 {
		radius = 0
	}
	size := KernelSize(radius)
	k := make([][]float32, size)
	for y := range k {
		k[y] = make([]float32, size)
		dy := float64(y - radius)
		for x := range k[y] {
			dx := float64(x - radius)
			k[y][x] = float32(math.Exp(-(dx*dx + dy*dy)))
		}
	}
	return k
}

// KernelSize returns the number of taps for a radius: 2*radius+1.
func KernelSize(radius int) int {
	if radius <= 0 {
		return 1
	}
	return radius*2 + 1
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// kernelCache caches computed bump kernels keyed by radius.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32)}

// get retrieves a kernel from cache or generates and caches it.
// Cached kernels are shared and must not be modified.
func (c *kernelCache) get(radius int) []float32 {
	c.mu.RLock()
	if kernel, ok := c.cache[radius]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := BumpKernel(radius)

	c.mu.Lock()
	c.cache[radius] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedBumpKernel returns a shared bump kernel for the radius.
func CachedBumpKernel(radius int) []float32 {
	return defaultKernelCache.get(radius)
}
