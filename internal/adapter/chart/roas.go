// Package chart renders the ROAS bar chart shown next to an analysis report.
package chart

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"campaign-advisor/internal/core/domain"
)

const (
	plotHeight = 300.0
	barSlot    = 48.0
	barWidth   = 32.0
	marginLeft = 60.0
	marginTop  = 40.0
	marginBot  = 70.0
	marginRt   = 150.0
	minWidth   = 480.0
)

// RenderROAS writes an SVG bar chart with one bar per evaluation and a
// dashed red line at threshold. Unbounded ROAS bars are drawn to the top of
// the plot and labelled "inf"; indeterminate ones have no bar and are
// labelled "n/a".
func RenderROAS(w io.Writer, evals []domain.Evaluation, threshold float64) error {
	top := threshold
	for _, e := range evals {
		if e.Metrics.ROAS.IsDefined() && e.Metrics.ROAS.Value > top {
			top = e.Metrics.ROAS.Value
		}
	}
	if top <= 0 {
		top = 1
	}
	top *= 1.1

	width := marginLeft + float64(len(evals))*barSlot + marginRt
	if width < minWidth {
		width = minWidth
	}
	height := marginTop + plotHeight + marginBot
	baseline := marginTop + plotHeight
	y := func(v float64) float64 { return baseline - v/top*plotHeight }

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" font-family="sans-serif" font-size="12">`+"\n", width, height, width, height)
	fmt.Fprintf(bw, `<text x="%.1f" y="24" text-anchor="middle" font-size="16">ROAS by Campaign</text>`+"\n", width/2)

	// axes
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333"/>`+"\n", marginLeft, marginTop, marginLeft, baseline)
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333"/>`+"\n", marginLeft, baseline, width-marginRt, baseline)
	for i := 0; i <= 4; i++ {
		v := top * float64(i) / 4
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="end">%.2f</text>`+"\n", marginLeft-6, y(v)+4, v)
	}
	fmt.Fprintf(bw, `<text x="16" y="%.1f" text-anchor="middle" transform="rotate(-90 16 %.1f)">ROAS</text>`+"\n", baseline-plotHeight/2, baseline-plotHeight/2)
	fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle">Campaign ID</text>`+"\n", marginLeft+(width-marginLeft-marginRt)/2, height-12)

	for i, e := range evals {
		x := marginLeft + float64(i)*barSlot + (barSlot-barWidth)/2
		cx := x + barWidth/2
		roas := e.Metrics.ROAS
		label := roas.String()
		switch roas.State {
		case domain.Defined:
			fmt.Fprintf(bw, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="skyblue"/>`+"\n", x, y(roas.Value), barWidth, baseline-y(roas.Value))
			fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n", cx, y(roas.Value)-4, label)
		case domain.Unbounded:
			fmt.Fprintf(bw, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="skyblue" fill-opacity="0.5"/>`+"\n", x, marginTop, barWidth, plotHeight)
			fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n", cx, marginTop-4, label)
		default:
			fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle" fill="#999">%s</text>`+"\n", cx, baseline-4, label)
		}
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="end" transform="rotate(-45 %.1f %.1f)">%s</text>`+"\n",
			cx, baseline+14, cx, baseline+14, html.EscapeString(e.Record.CampaignID))
	}

	ty := y(threshold)
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="red" stroke-dasharray="6 4"/>`+"\n", marginLeft, ty, width-marginRt, ty)

	// legend
	lx := width - marginRt + 12
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="red" stroke-dasharray="6 4"/>`+"\n", lx, marginTop+6, lx+24, marginTop+6)
	fmt.Fprintf(bw, `<text x="%.1f" y="%.1f">ROAS Threshold</text>`+"\n", lx+30, marginTop+10)
	fmt.Fprint(bw, "</svg>\n")

	return bw.Flush()
}
