package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/rciliberto/ray-tracer/log"
	"github.com/rciliberto/ray-tracer/pkg/renderer"
)

// setupLogging applies the global verbosity flags
func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}

// displayRenderStats prints a summary table for a completed render
func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/px", "Total samples", "Rays traced", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.RaysTraced),
		fmt.Sprintf("%d", stats.Workers),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.Render()

	logger.Infof("render statistics\n%s", buf.String())
}
