// Package regions implements the region pipeline of spec §4.5: minting
// identity-bearing Regions from a layer's collated outline polygons,
// offsetting them into ranked shells, and offsetting them again into the
// interior region every exposure/fill computation operates on.
//
// Region identity (Region.ID) is assigned once, at outline construction,
// from the process-wide idfactory counter, and is carried unchanged
// through every later offset so shell and interior regions stay
// attributable to the outline they came from (spec §3, testable
// property 4).
package regions
