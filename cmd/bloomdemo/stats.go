package main

import (
	"GopherBloom/internal/renderer"
	"GopherBloom/internal/software"
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// statsTable renders device and pool counters as a text table.
func statsTable(device software.Stats, pool renderer.PoolStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Counter", "Value"})

	rows := [][]string{
		{"blits", fmt.Sprintf("%d", device.Blits)},
		{"draws", fmt.Sprintf("%d", device.Draws)},
		{"clears", fmt.Sprintf("%d", device.Clears)},
		{"textures created", fmt.Sprintf("%d", device.TexturesCreated)},
		{"textures live", fmt.Sprintf("%d", device.LiveTextures)},
		{"temporary requests", fmt.Sprintf("%d", pool.Requests)},
		{"temporary releases", fmt.Sprintf("%d", pool.Releases)},
		{"temporary reuses", fmt.Sprintf("%d", pool.Reuses)},
		{"leaks", fmt.Sprintf("%d", pool.Leaks)},
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"pool memory", fmt.Sprintf("%.1f KiB", float64(pool.MemoryBytes)/1024)})

	table.Render()
	return buf.String()
}

func displayStats(device software.Stats, pool renderer.PoolStats) {
	fmt.Fprint(os.Stdout, statsTable(device, pool))
}
