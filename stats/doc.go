// Package stats implements the statistical machinery behind the benchmark
// harness: samples, percentile views, Tukey outlier classification, kernel
// density estimation, bootstrap resampling, linear regression, and Welch's
// t-test.
//
// It is not a general statistics library. It provides exactly the
// estimators benchmark analysis needs and the resampling infrastructure to
// bound their uncertainty.
//
// # Samples and estimators
//
// A Sample is an immutable set of observations:
//
//	s, err := stats.NewSample(times)
//	mean := s.Mean()
//	q1, med, q3 := s.Percentiles().Quartiles()
//
// # Bootstrap
//
// Bootstrap resamples a sample with replacement and collects the value of
// one or more estimators over the resamples into Distributions:
//
//	dists := stats.Bootstrap(s, 100_000, (*stats.Sample).Mean, (*stats.Sample).Median)
//	lo, hi, err := dists[0].ConfidenceInterval(0.95)
//
// Resampling runs in parallel; pass a seed via BootstrapSeeded for
// reproducible passes.
//
// # Regression
//
// FitThroughOrigin fits (iteration count, elapsed time) pairs to a line
// through the origin; the slope is the cost per iteration:
//
//	d, err := stats.NewData(iters, elapsed)
//	perIter := stats.FitThroughOrigin(d)
//	fit := perIter.RSquared(d)
//
// # Outliers
//
// ClassifyOutliers labels observations with Tukey's boxplot method. The
// labels are advisory; no estimator drops outliers unless the caller asks
// for the filtered view explicitly.
package stats
