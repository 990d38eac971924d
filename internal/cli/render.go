package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/arya-nigam06/reelcut/internal/types"
)

// renderResult lists every artifact that actually exists, plus everything
// that was dropped along the way. Tables only on a terminal; plain lines
// otherwise so output stays pipeable.
func renderResult(res types.PipelineResult) string {
	rows := make([][]string, 0, len(res.ReelPaths)+3)
	for i, p := range res.ReelPaths {
		rows = append(rows, []string{fmt.Sprintf("reel %d", i+1), p})
	}
	rows = append(rows,
		[]string{"highlight video", res.HighlightVideoPath},
		[]string{"subtitles", res.SubtitlePath},
		[]string{"transcript", res.TranscriptPath},
	)

	var b strings.Builder
	if stdoutIsTerminal() {
		b.WriteString(renderTable([]string{"Artifact", "Path"}, rows))
	} else {
		for _, r := range rows {
			fmt.Fprintf(&b, "%s\t%s\n", r[0], r[1])
		}
	}
	for _, d := range res.Dropped {
		fmt.Fprintf(&b, "dropped: %s\n", d)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render() + "\n"
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
