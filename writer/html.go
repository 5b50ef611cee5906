package writer

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/pipeline"
)

// pixelsPerMM is the fixed SVG scale factor ("factor" in the original).
const pixelsPerMM = 10.0

// strokeWidth is the fixed per-path stroke width spec §6 specifies.
const strokeWidth = 0.2

// WriteHTML renders every layer's finished, travel-ordered path list as
// a single HTML document with an embedded SVG layer viewer: one <g> per
// layer (display:none except layer 0), a range slider, and an inline
// script toggling which group is shown (spec §6).
func WriteHTML(w io.Writer, name string, layers []pipeline.LayerResult, bounds mesh.Bounds3D, resolution float64) error {
	viewWidth := (bounds.X.Max - bounds.X.Min) * pixelsPerMM
	viewHeight := (bounds.Y.Max - bounds.Y.Min) * pixelsPerMM

	var body strings.Builder
	fmt.Fprintf(&body, `<svg id="layers" viewBox="0 0 %g %g">`+"\n", viewWidth, viewHeight)
	for id, layer := range layers {
		display := "none"
		if id == 0 {
			display = "inline"
		}
		fmt.Fprintf(&body, `<g id="layer_%d" display="%s">`+"\n", id, display)
		for _, tp := range layer.Paths {
			writePath(&body, tp.Path, colorFor(tp.Tag), bounds, resolution)
		}
		body.WriteString("</g>\n")
	}
	body.WriteString("</svg>\n")

	_, err := fmt.Fprintf(w, htmlTemplate,
		html.EscapeString(name),
		len(layers)-1,
		body.String(),
		len(layers),
	)
	return err
}

func writePath(b *strings.Builder, line geomkernel.LineString, color string, bounds mesh.Bounds3D, resolution float64) {
	if len(line) == 0 {
		return
	}
	toPixel := func(p geomkernel.Point2) (float64, float64) {
		x := (float64(p.X)*resolution - bounds.X.Min) * pixelsPerMM
		y := (float64(p.Y)*resolution - bounds.Y.Min) * pixelsPerMM
		return x, y
	}
	x0, y0 := toPixel(line[0])
	fmt.Fprintf(b, `<path fill="none" stroke="%s" stroke-width="%g" d="M %g,%g `, color, strokeWidth, x0, y0)
	for _, p := range line[1:] {
		x, y := toPixel(p)
		fmt.Fprintf(b, `L %g,%g `, x, y)
	}
	b.WriteString(`Z" />` + "\n")
}

const htmlTemplate = `<!DOCTYPE html><html><head><title>%s</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>
.slidecontainer { width: 100%%; }
.slider {
    -webkit-appearance: none;
    width: 100%%;
    height: 25px;
    background: #d3d3d3;
    outline: none;
    opacity: 0.7;
    -webkit-transition: .2s;
    transition: opacity .2s;
}
.slider:hover { opacity: 1; }
.slider::-webkit-slider-thumb {
    -webkit-appearance: none;
    appearance: none;
    width: 25px;
    height: 25px;
    background: #4CAF50;
    cursor: pointer;
}
.slider::-moz-range-thumb {
    width: 25px;
    height: 25px;
    background: #4CAF50;
    cursor: pointer;
}
</style>
</head><body>
<div class="slidecontainer">
  <input type="range" min="0" max="%d" value="0" class="slider" id="layerSlider">
  <p>Value: <span id="layerId"></span></p>
</div>
%s
<script>
var slider = document.getElementById("layerSlider");
var layerSvg = document.getElementById("layers");
var output = document.getElementById("layerId");
var curLayerGroup = layerSvg.getElementById("layer_0");
curLayerGroup.setAttributeNS(null, "display", "inline");
var numLayers = %d;

output.innerHTML = slider.value;

slider.oninput = function() {
    output.innerHTML = this.value;

    for (var i = 0; i < numLayers; ++i) {
        var thisLayerGroup = layerSvg.getElementById("layer_" + i);
        thisLayerGroup.setAttributeNS(null, "display", "none");
    }

    var newLayerGroup = layerSvg.getElementById("layer_" + this.value);
    newLayerGroup.setAttributeNS(null, "display", "inline");
};
</script>
</body></html>
`
