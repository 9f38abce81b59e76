package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nconv/internal/scan"
)

// PlotSweep renders a sweep as an ASCII line chart. The x axis is the
// input grid (even spacing keeps the chart faithful); the caption names
// both axes with units.
func PlotSweep(res *scan.Result, width, height int) string {
	caption := fmt.Sprintf("%s [%s] vs %s [%s], species %s",
		res.OutputName, res.OutputUnit, res.InputName, res.InputUnit, res.Species)
	graph := asciigraph.Plot(res.Outputs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	rangeLine := fmt.Sprintf("%s: %g .. %g %s",
		res.InputName, res.Inputs[0], res.Inputs[len(res.Inputs)-1], res.InputUnit)
	return graph + "\n" + label.Render(rangeLine) + "\n"
}
