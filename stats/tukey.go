package stats

// Outlier classification after Tukey's boxplot method. Two pairs of fences
// are computed from the quartiles:
//
//	iqr := q3 - q1
//	lowMild, highMild     := q1-1.5*iqr, q3+1.5*iqr
//	lowSevere, highSevere := q1-3*iqr, q3+3*iqr
//
// Observations beyond the outer fences are severe outliers, observations
// between the inner and outer fences are mild outliers, and everything
// inside the inner fences is normal data.

// Label classifies one observation relative to the fences.
type Label int

const (
	NotAnOutlier Label = iota
	LowSevere
	LowMild
	HighMild
	HighSevere
)

func (l Label) String() string {
	switch l {
	case LowSevere:
		return "low severe"
	case LowMild:
		return "low mild"
	case HighMild:
		return "high mild"
	case HighSevere:
		return "high severe"
	default:
		return "not an outlier"
	}
}

// OutlierReport counts the observations per label.
type OutlierReport struct {
	LowSevere  int
	LowMild    int
	HighMild   int
	HighSevere int
	SampleSize int
}

// Total returns the number of observations labeled as any kind of outlier.
func (r OutlierReport) Total() int {
	return r.LowSevere + r.LowMild + r.HighMild + r.HighSevere
}

// LabeledSample is a sample together with its Tukey fences. Classification
// is advisory: the underlying sample is never modified, and outliers stay
// in every estimate unless WithoutOutliers is called explicitly.
type LabeledSample struct {
	sample *Sample

	lowSevere  float64
	lowMild    float64
	highMild   float64
	highSevere float64
}

// ClassifyOutliers computes the Tukey fences for s. For a constant sample
// the IQR is zero, all four fences collapse onto the quartiles, and no
// observation is classified as an outlier.
func ClassifyOutliers(s *Sample) LabeledSample {
	q1, _, q3 := s.Percentiles().Quartiles()
	iqr := q3 - q1
	return LabeledSample{
		sample:     s,
		lowSevere:  q1 - 3*iqr,
		lowMild:    q1 - 1.5*iqr,
		highMild:   q3 + 1.5*iqr,
		highSevere: q3 + 3*iqr,
	}
}

// Fences returns the four fences in ascending order.
func (l LabeledSample) Fences() (lowSevere, lowMild, highMild, highSevere float64) {
	return l.lowSevere, l.lowMild, l.highMild, l.highSevere
}

// Label classifies a single observation. The most extreme matching band
// wins, and every observation lands in exactly one band.
func (l LabeledSample) Label(x float64) Label {
	switch {
	case x < l.lowSevere:
		return LowSevere
	case x > l.highSevere:
		return HighSevere
	case x < l.lowMild:
		return LowMild
	case x > l.highMild:
		return HighMild
	default:
		return NotAnOutlier
	}
}

// Count tallies the labels over the whole sample.
func (l LabeledSample) Count() OutlierReport {
	r := OutlierReport{SampleSize: l.sample.Len()}
	for _, x := range l.sample.xs {
		switch l.Label(x) {
		case LowSevere:
			r.LowSevere++
		case LowMild:
			r.LowMild++
		case HighMild:
			r.HighMild++
		case HighSevere:
			r.HighSevere++
		}
	}
	return r
}

// WithoutOutliers returns a new sample holding only the observations inside
// the inner fences. The median always lies inside the fences, so the result
// is never empty.
func (l LabeledSample) WithoutOutliers() *Sample {
	kept := make([]float64, 0, l.sample.Len())
	for _, x := range l.sample.xs {
		if l.Label(x) == NotAnOutlier {
			kept = append(kept, x)
		}
	}
	return &Sample{xs: kept}
}
