package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

// WelchT returns Welch's t-statistic for the difference in means of the two
// samples:
//
//	t = (mean(a) - mean(b)) / sqrt(var(a)/len(a) + var(b)/len(b))
//
// Unlike Student's t, Welch's variant assumes neither equal sample sizes
// nor equal variances, which matches real benchmark noise profiles. The
// statistic is antisymmetric: WelchT(a, b) == -WelchT(b, a).
func WelchT(a, b *Sample) float64 {
	meanA, meanB := a.Mean(), b.Mean()
	varA, varB := a.varWithMean(meanA), b.varWithMean(meanB)
	nA, nB := float64(a.Len()), float64(b.Len())
	return (meanA - meanB) / math.Sqrt(varA/nA+varB/nB)
}

// WelchDF returns the Welch-Satterthwaite approximation of the degrees of
// freedom for the t-statistic of the two samples.
func WelchDF(a, b *Sample) float64 {
	varA, varB := a.Variance(), b.Variance()
	nA, nB := float64(a.Len()), float64(b.Len())
	sa, sb := varA/nA, varB/nB
	num := (sa + sb) * (sa + sb)
	den := sa*sa/(nA-1) + sb*sb/(nB-1)
	return num / den
}

// WelchPValue returns the two-sided analytic p-value of Welch's t-test,
// evaluating Student's t-distribution at the Welch-Satterthwaite degrees of
// freedom. Degenerate inputs (both samples constant) have zero variance and
// an undefined statistic; the p-value is then 1 for equal means and 0
// otherwise.
func WelchPValue(a, b *Sample) float64 {
	t := WelchT(a, b)
	if math.IsNaN(t) {
		// 0/0: no variance and no difference in means.
		return 1
	}
	if math.IsInf(t, 0) {
		return 0
	}
	dist := mstats.TDist{V: WelchDF(a, b)}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}
