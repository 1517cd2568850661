package shader

import "github.com/Carmen-Shannon/floatarts/engine/transform"

// FeaturesFor returns the object program features a variant needs.
//
// Parameters:
//   - v: the variant
//
// Returns:
//   - []Feature: the enabled features
func FeaturesFor(v transform.Variant) []Feature {
	var features []Feature
	if v.HasLight {
		features = append(features, FeatureLight)
	}
	if v.Scale != 0 {
		features = append(features, FeatureScale)
	}
	return features
}
