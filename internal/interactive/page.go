// Package interactive builds browser-viewable versions of the report charts
// and hands them to a display sink.
package interactive

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"fjacquet/fire-report/internal/chart"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/palette"
)

const echartsURL = "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"

// Page is a standalone interactive chart.
type Page struct {
	Name   string
	Title  string
	Option map[string]interface{}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="{{.Script}}"></script>
    <style>html,body{margin:0;height:100%;font-family:sans-serif}#chart{width:100%;height:100%}</style>
</head>
<body>
<div id="chart"></div>
<script>
const chart = echarts.init(document.getElementById('chart'));
chart.setOption({{.Option}});
window.addEventListener('resize', () => chart.resize());
</script>
</body>
</html>
`))

// Render writes the page as an HTML document.
func (p *Page) Render(w io.Writer) error {
	option, err := json.Marshal(p.Option)
	if err != nil {
		return fmt.Errorf("encode %s option: %w", p.Name, err)
	}
	return pageTemplate.Execute(w, struct {
		Title  string
		Script string
		Option template.JS
	}{
		Title:  p.Title,
		Script: echartsURL,
		Option: template.JS(option),
	})
}

func titleOption(text string) map[string]interface{} {
	return map[string]interface{}{"text": text, "left": "center"}
}

// BarPage shows incidents per year as bars.
func BarPage(rows []models.YearCount) *Page {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row.Year.Label()
		values[i] = row.Number.Float64()
	}
	return &Page{
		Name:  chart.BarName,
		Title: chart.BarTitle,
		Option: map[string]interface{}{
			"title":   titleOption(chart.BarTitle),
			"tooltip": map[string]interface{}{"trigger": "axis"},
			"xAxis":   map[string]interface{}{"type": "category", "data": labels, "name": "year"},
			"yAxis":   map[string]interface{}{"type": "value", "name": "number"},
			"series": []interface{}{map[string]interface{}{
				"type":      "bar",
				"data":      values,
				"itemStyle": map[string]interface{}{"color": palette.Hex(palette.SkyBlue)},
			}},
		},
	}
}

// PiePage shows the share of incidents per region.
func PiePage(rows []models.RegionCount) *Page {
	colors := palette.Colors(len(rows))
	data := make([]interface{}, len(rows))
	for i, row := range rows {
		data[i] = map[string]interface{}{
			"name":      strings.TrimSpace(row.Region),
			"value":     row.Number.Float64(),
			"itemStyle": map[string]interface{}{"color": palette.Hex(colors[i])},
		}
	}
	return &Page{
		Name:  chart.PieName,
		Title: chart.PieTitle,
		Option: map[string]interface{}{
			"title":   titleOption(chart.PieTitle),
			"tooltip": map[string]interface{}{"trigger": "item", "formatter": "{b}: {c} ({d}%)"},
			"legend":  map[string]interface{}{"orient": "vertical", "left": "left"},
			"series": []interface{}{map[string]interface{}{
				"type":   "pie",
				"radius": "60%",
				"data":   data,
				"label":  map[string]interface{}{"formatter": "{b}: {d}%"},
			}},
		},
	}
}

// TimeSeriesPage shows one line per state over time.
func TimeSeriesPage(rows []models.StateCount) *Page {
	groups := chart.GroupByState(rows)
	colors := palette.Colors(len(groups))
	series := make([]interface{}, len(groups))
	names := make([]string, len(groups))
	for i, s := range groups {
		points := make([]interface{}, len(s.Points))
		for j, pt := range s.Points {
			points[j] = []interface{}{pt.Date.Format("2006-01-02"), pt.Value}
		}
		names[i] = s.Name
		series[i] = map[string]interface{}{
			"name":      s.Name,
			"type":      "line",
			"data":      points,
			"itemStyle": map[string]interface{}{"color": palette.Hex(colors[i])},
		}
	}
	return &Page{
		Name:  chart.TimeSeriesName,
		Title: chart.TimeSeriesTitle,
		Option: map[string]interface{}{
			"title":   titleOption(chart.TimeSeriesTitle),
			"tooltip": map[string]interface{}{"trigger": "axis"},
			"legend":  map[string]interface{}{"data": names, "top": "bottom"},
			"xAxis":   map[string]interface{}{"type": "time", "name": "year"},
			"yAxis":   map[string]interface{}{"type": "value", "name": "number"},
			"series":  series,
		},
	}
}
