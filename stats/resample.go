package stats

// Resampler draws with-replacement resamples from a source sample. Each
// resample has the same length as the source and is built by drawing
// indices uniformly and independently from [0, n).
//
// A Resampler owns one scratch buffer that Next refills in place, so a
// resampling pass allocates nothing after the first draw. Fresh allocates a
// new slice per draw instead; both entry points have identical observable
// semantics. A Resampler is not safe for concurrent use; the bootstrap
// driver gives every worker its own.
type Resampler struct {
	src []float64
	buf []float64
	rng *DPRNG
}

// NewResampler creates a resampler over s driven by rng.
func NewResampler(s *Sample, rng *DPRNG) *Resampler {
	return &Resampler{src: s.xs, rng: rng}
}

// Next refills the shared scratch buffer with a new resample and returns it
// as a read-only sample view. The view is only valid until the next call to
// Next; estimator functions must consume it before the buffer is refilled.
func (r *Resampler) Next() *Sample {
	if r.buf == nil {
		r.buf = make([]float64, len(r.src))
	}
	r.fill(r.buf)
	return newScratchSample(r.buf)
}

// Fresh returns a newly allocated resample that the caller may retain.
func (r *Resampler) Fresh() *Sample {
	buf := make([]float64, len(r.src))
	r.fill(buf)
	return &Sample{xs: buf}
}

func (r *Resampler) fill(buf []float64) {
	n := uint64(len(r.src))
	for i := range buf {
		buf[i] = r.src[r.rng.Uint64N(n)]
	}
}

// DataResampler draws paired with-replacement resamples from a bivariate
// data set. Each draw selects one index and takes both the x and the y at
// that index, preserving the pairing between iteration counts and elapsed
// times.
type DataResampler struct {
	srcX []float64
	srcY []float64
	bufX []float64
	bufY []float64
	rng  *DPRNG
}

// NewDataResampler creates a paired resampler over d driven by rng.
func NewDataResampler(d *Data, rng *DPRNG) *DataResampler {
	return &DataResampler{srcX: d.xs, srcY: d.ys, rng: rng}
}

// Next refills the shared scratch buffers with a new paired resample. The
// returned view is only valid until the next call to Next.
func (r *DataResampler) Next() *Data {
	if r.bufX == nil {
		r.bufX = make([]float64, len(r.srcX))
		r.bufY = make([]float64, len(r.srcY))
	}
	n := uint64(len(r.srcX))
	for i := range r.bufX {
		j := r.rng.Uint64N(n)
		r.bufX[i] = r.srcX[j]
		r.bufY[i] = r.srcY[j]
	}
	return newScratchData(r.bufX, r.bufY)
}
