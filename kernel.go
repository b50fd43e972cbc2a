package textimg

import (
	"math"
	"sync"
)

// gaussianKernel generates a normalized 1D Gaussian kernel for the given
// standard deviation. The kernel half-width is ceil(3*sigma), which covers
// 99.7% of the distribution.
//
// For sigma <= 0, returns a single-element identity kernel.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	halfSize := kernelReach(sigma)
	size := halfSize*2 + 1

	kernel := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}

	return kernel
}

// kernelReach returns the half-width of the Gaussian kernel for sigma,
// i.e. how many pixels the blur bleeds in each direction.
func kernelReach(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache caches computed Gaussian kernels keyed by quantized sigma.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = &kernelCache{
	cache:  make(map[int][]float32),
	maxLen: 64,
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	// Quantize sigma to 0.01 precision
	key := int(sigma * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := gaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// cachedGaussianKernel returns a shared, cached kernel for sigma.
// Callers must not modify the returned slice.
func cachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
