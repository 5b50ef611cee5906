// Package writer renders a finished pipeline run as a self-contained
// HTML document: one SVG <g> per layer, a range slider, and a tiny
// inline script that shows only the selected layer (spec §6's output
// contract).
package writer
