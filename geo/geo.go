// SPDX-License-Identifier: MIT

// Package geo exports search results as orb geometries and GeoJSON so hosts can
// draw or store them with standard tooling.
//
// Grid coordinates map to planar points one-to-one (X→x, Y→y); no projection
// is applied. Exported lines run start-first.
package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/network"
)

// ErrNoGeometry indicates a result without a path to export.
var ErrNoGeometry = errors.New("geo: result has no path")

// Point converts a coordinate to a planar point.
func Point(c network.Coordinate) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// LineString converts a path to a line in the same order.
func LineString(path []network.Coordinate) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = Point(c)
	}

	return ls
}

// Length returns the Euclidean length of path.
func Length(path []network.Coordinate) float64 {
	return planar.Length(LineString(path))
}

// Feature builds a GeoJSON feature for a found result: a start-first LineString
// (a Point for single-node paths) with cost, expanded, outcome and nodes properties.
// Returns ErrNoGeometry when res holds no path.
func Feature(res network.Result) (*geojson.Feature, error) {
	if len(res.Path) == 0 {
		return nil, fmt.Errorf("%w: outcome %s", ErrNoGeometry, res.Outcome)
	}

	var g orb.Geometry
	if len(res.Path) == 1 {
		g = Point(res.Path[0])
	} else {
		g = LineString(network.Reverse(res.Path))
	}
	f := geojson.NewFeature(g)
	f.Properties["cost"] = res.Cost
	f.Properties["expanded"] = res.Expanded
	f.Properties["outcome"] = res.Outcome.String()
	f.Properties["nodes"] = len(res.Path)

	return f, nil
}

// Collection wraps the features of every found result; results without a path are skipped.
func Collection(results ...network.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, res := range results {
		f, err := Feature(res)
		if err != nil {
			continue
		}
		fc.Append(f)
	}

	return fc
}

// Marshal encodes the feature of res as GeoJSON.
func Marshal(res network.Result) ([]byte, error) {
	f, err := Feature(res)
	if err != nil {
		return nil, err
	}

	return f.MarshalJSON()
}
