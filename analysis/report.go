package analysis

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/rustyeddy/tradebook/journal"
)

// ColorThreshold splits bars into good (+) and bad (-) groups.
const ColorThreshold = 60.0

const barWidth = 20

var reportOrgFuncs = template.FuncMap{
	"join": journal.JoinCriteria,
	"bar": func(pct float64) string {
		n := int(pct/100*barWidth + 0.5)
		if n < 0 {
			n = 0
		}
		if n > barWidth {
			n = barWidth
		}
		return strings.Repeat("#", n)
	},
	"verdict": func(pct float64) string {
		if pct >= ColorThreshold {
			return "+"
		}
		return "-"
	},
	"countBar": func(n, max int) string {
		if max <= 0 {
			return ""
		}
		return strings.Repeat("#", (n*barWidth+max-1)/max)
	},
}

var reportOrgTemplate = template.Must(template.New("report").Funcs(reportOrgFuncs).Parse(ReportOrgTemplate))

type reportView struct {
	Report
	MaxDay int
}

// RenderOrg renders the report as an Org-mode document.
func RenderOrg(r Report) (string, error) {
	buf := new(bytes.Buffer)
	if err := WriteOrg(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func WriteOrg(w io.Writer, r Report) error {
	v := reportView{Report: r}
	for _, d := range r.Days {
		if d.Trades > v.MaxDay {
			v.MaxDay = d.Trades
		}
	}
	return reportOrgTemplate.Execute(w, v)
}

const ReportOrgTemplate = `* TRADE JOURNAL ANALYSIS
:PROPERTIES:
:TRADES:      {{.Summary.Total}}
:START_BAL:   {{printf "%.2f" .Summary.StartBalance}}
:CURRENT_BAL: {{printf "%.2f" .Summary.CurrentBalance}}
:SUBSETS:     {{.Subsets}}
:END:

Current Balance: *{{printf "%.2f" .Summary.CurrentBalance}}$*
{{- if .Empty}}

No trades have been made yet.
{{- else}}

** Statistics
- Total Trades:   {{.Summary.Total}}
- Win Trades:     {{.Summary.Wins}}
- Loss Trades:    {{.Summary.Losses}}
- Win Rate:       {{printf "%.2f" .Summary.WinRate}}%
- Average Result: {{printf "%.2f" .Summary.MeanResult}}
- Profit Factor:  {{if gt .Summary.GrossLoss 0.0}}{{printf "%.2f" .Summary.ProfitFactor}}{{else}}(no losses){{end}}

** Best Group
{{- with .Best}}
The group with the highest winrate is {{.Name}} with a winrate of {{printf "%.2f" .WinRate}}% ({{.Wins}}/{{.Trades}}).
- Criteria: {{join .Criteria}}
{{- else}}
No criteria combination has matching trades yet.
{{- end}}

** Combinations with Winrate {{printf "%.0f" .HighThreshold}}%+
{{- template "bucket" .High}}

** Combinations with Winrate {{printf "%.0f" .LowThreshold}}%-
{{- template "bucket" .Low}}

** Trade Count and Winrate by Day of Week
{{- if .Days}}
| Day | Trades | Win Rate | Count |
|-----+--------+----------+-------|
{{- range .Days}}
| {{.Name}} | {{.Trades}} | {{printf "%.2f" .WinRate}}% | {{countBar .Trades $.MaxDay}} |
{{- end}}
{{- else}}
No trades with a readable entry time.
{{- end}}
{{- end}}

{{- if .Warnings}}

** Warnings
{{- range .Warnings}}
- {{.}}
{{- end}}
{{- end}}
{{define "bucket"}}
{{- if .}}
| Group | Win Rate | Trades | Bar | |
|-------+----------+--------+-----+---|
{{- range .}}
| {{.Name}} | {{printf "%.2f" .WinRate}}% | {{.Trades}} | {{bar .WinRate}} | {{verdict .WinRate}} |
{{- end}}
{{range .}}
- *{{.Name}}*: {{join .Criteria}}
{{- end}}
{{- else}}
No combinations in this range.
{{- end}}
{{- end}}
`
