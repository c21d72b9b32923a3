// Package profile computes the similarity primitives the row matcher is
// built on: value normalization, per-column statistics, column weights,
// weighted row similarity and the dynamic acceptance threshold.
//
// Normalization is the single definition of "equal" across the module:
// key matching, LCS fingerprints and similarity scoring all go through a
// Normalizer created from the same grid.Options, so the strategies can never
// disagree about whether two cells are the same.
//
// Weights reward columns whose values tell rows apart (high UniqueRatio,
// counted over both datasets together) and penalize sparse ones (high
// EmptyRatio):
//
//	weight = max(UniqueRatio·(1−EmptyRatio), WeightEpsilon)   for used columns
//	weight = 0                                                for ignored columns
//
// The dynamic threshold maps the mean weight of the used columns from
// [SharedWeight, 1] onto [MinThreshold, MaxThreshold]: datasets that differ
// in most columns demand closer matches, while a row with one edited cell
// among unchanged ones can still pair.
package profile
