package textimg

// Mask effects for the outline and glow layers. Both operate on coverage
// only; color is applied when the result is composited.

// Dilate expands mask coverage by thickness pixels in every direction
// using a square structuring element, so diagonal growth matches axis
// growth (Chebyshev distance). The returned mask is larger than the
// input by thickness on each side, with the original content centered.
//
// The square element is separable: a horizontal then a vertical running
// max gives the same result as the 2D neighborhood scan in
// O(w*h*thickness) instead of O(w*h*thickness^2).
func Dilate(src *Mask, thickness int) *Mask {
	if thickness <= 0 {
		return src.Clone()
	}

	srcW, srcH := src.Width(), src.Height()
	w := srcW + 2*thickness
	h := srcH + 2*thickness

	// Pass 1: horizontal max (src -> temp), already at the output width.
	temp := NewMask(w, srcH)
	for y := 0; y < srcH; y++ {
		srcRow := src.Data()[y*srcW : (y+1)*srcW]
		dstRow := temp.Data()[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			lo := x - thickness - thickness // src x of window start
			hi := x - thickness + thickness // src x of window end
			if lo < 0 {
				lo = 0
			}
			if hi >= srcW {
				hi = srcW - 1
			}
			var max uint8
			for sx := lo; sx <= hi; sx++ {
				if srcRow[sx] > max {
					max = srcRow[sx]
				}
			}
			dstRow[x] = max
		}
	}

	// Pass 2: vertical max (temp -> dst).
	dst := NewMask(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			lo := y - 2*thickness
			hi := y
			if lo < 0 {
				lo = 0
			}
			if hi >= srcH {
				hi = srcH - 1
			}
			var max uint8
			for sy := lo; sy <= hi; sy++ {
				if v := temp.Data()[sy*w+x]; v > max {
					max = v
				}
			}
			dst.Data()[y*w+x] = max
		}
	}

	return dst
}

// GlowSigma converts a glow radius in pixels to the Gaussian standard
// deviation used by Blur.
func GlowSigma(radiusPx int) float64 {
	return float64(radiusPx) / 2
}

// Blur applies a separable Gaussian blur to the mask coverage. The
// returned mask is larger than the input by the kernel reach on each
// side so the bleed is never clipped to the input box; clipping to the
// canvas happens at composite time.
func Blur(src *Mask, sigma float64) *Mask {
	reach := kernelReach(sigma)
	if reach == 0 {
		return src.Clone()
	}

	kernel := cachedGaussianKernel(sigma)
	half := len(kernel) / 2

	srcW, srcH := src.Width(), src.Height()
	w := srcW + 2*reach
	h := srcH + 2*reach

	// Pass 1: horizontal convolution (src -> temp). Pixels outside the
	// source contribute zero coverage.
	temp := make([]float32, w*srcH)
	srcData := src.Data()
	for y := 0; y < srcH; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k := 0; k < len(kernel); k++ {
				sx := x - reach + k - half
				if sx < 0 || sx >= srcW {
					continue
				}
				sum += kernel[k] * float32(srcData[y*srcW+sx])
			}
			temp[y*w+x] = sum
		}
	}

	// Pass 2: vertical convolution (temp -> dst).
	dst := NewMask(w, h)
	dstData := dst.Data()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum float32
			for k := 0; k < len(kernel); k++ {
				sy := y - reach + k - half
				if sy < 0 || sy >= srcH {
					continue
				}
				sum += kernel[k] * temp[sy*w+x]
			}
			v := sum + 0.5
			if v > 255 {
				v = 255
			}
			dstData[y*w+x] = uint8(v)
		}
	}

	return dst
}

// ScaleCoverage multiplies every coverage value by factor, capping at
// full coverage. The glow layer uses this to apply intensity on top of
// the blurred falloff.
func ScaleCoverage(m *Mask, factor float64) {
	if factor == 1 {
		return
	}
	data := m.Data()
	for i, v := range data {
		scaled := float64(v) * factor
		if scaled > 255 {
			scaled = 255
		}
		data[i] = uint8(scaled + 0.5)
	}
}
