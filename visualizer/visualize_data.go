package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// HTML references for the rendered pages.
const massesRef = "atom-masses"
const decayRef = "mass-decay"
const densityRef = "base-density"
const chainRef = "break-chain"

// maxChainAtoms limits the number of atoms shown in the break-chain graph.
const maxChainAtoms = 15

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Dirichlet: Stick-Breaking Sampler</title>
    <link rel="stylesheet" href="style.css">
    <script src="script.js"></script>
  </head>
  <body>
    <h1>Dirichlet: Stick-Breaking Sampler</h1>
    <ul>
    <li> <h3> <a href="/` + massesRef + `"> Atom Masses </a> </h3> </li>
    <li> <h3> <a href="/` + decayRef + `"> Remaining-Mass Decay </a> </h3> </li>
    <li> <h3> <a href="/` + densityRef + `"> Base Density </a> </h3> </li>
    <li> <h3> <a href="/` + chainRef + `"> Break Chain </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, MainHtml)
}

// newToolbox creates the common toolbox options of all charts.
func newToolbox() opts.Toolbox {
	return opts.Toolbox{
		Show: true,
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  true,
				Title: "Save",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show: true,
			},
		},
	}
}

// convertBarData converts atom masses to chart points.
func convertBarData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for _, p := range data {
		items = append(items, opts.BarData{Value: p})
	}
	return items
}

// renderAtomMasses renders the atom masses as a bar chart in sampling order.
func renderAtomMasses(w http.ResponseWriter, r *http.Request) {
	view := GetMeasureData()
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Atom Masses",
	}),
		charts.WithToolboxOpts(newToolbox()),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Atom Masses",
			Subtitle: fmt.Sprintf("in sampling order, α=%.3f", view.Alpha),
		}))
	labels := []string{}
	for i := range view.Masses {
		labels = append(labels, fmt.Sprintf("%v", i))
	}
	bar.SetXAxis(labels).AddSeries("Mass", convertBarData(view.Masses))
	bar.Render(w)
}

// convertLineData converts curve points to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// renderMassDecay renders the remaining mass per atom against its expectation.
func renderMassDecay(w http.ResponseWriter, r *http.Request) {
	view := GetMeasureData()
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Remaining-Mass Decay",
	}),
		charts.WithToolboxOpts(newToolbox()),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Remaining-Mass Decay",
			Subtitle: fmt.Sprintf("unrepresented mass %.2e", view.Remaining),
		}))
	sAlpha := fmt.Sprintf("%.3f", view.Alpha)
	chart.AddSeries("remaining mass", convertLineData(view.Decay)).
		AddSeries("expected, α="+sAlpha, convertLineData(view.Expected))
	chart.Render(w)
}

// convertScatterData converts atom pairs for the scatter plot.
func convertScatterData(data [][2]float64) []opts.ScatterData {
	items := []opts.ScatterData{}
	for _, pair := range data {
		items = append(items, opts.ScatterData{Value: pair, SymbolSize: 5})
	}
	return items
}

// renderBaseDensity renders the base density curve and the atom locations.
func renderBaseDensity(w http.ResponseWriter, r *http.Request) {
	view := GetMeasureData()
	density := charts.NewLine()
	density.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(newToolbox()),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Base Density",
			Subtitle: "over the sampled location range",
		}))
	density.AddSeries("density", convertLineData(view.Density))

	atoms := charts.NewScatter()
	atoms.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(newToolbox()),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Atom Locations",
			Subtitle: "mass per sampled location",
		}))
	atoms.AddSeries("atoms", convertScatterData(view.Atoms))

	page := components.NewPage()
	page.AddCharts(density, atoms)
	page.Render(w)
}

// renderBreakChain renders the stick-breaking steps as a chain graph. Each
// edge carries the break fraction that splits the remaining stick.
func renderBreakChain(w http.ResponseWriter, r *http.Request) {
	view := GetMeasureData()
	g := graphviz.New()
	graph, _ := g.Graph()
	defer func() {
		graph.Close()
		g.Close()
	}()

	n := len(view.Breaks)
	if n > maxChainAtoms {
		n = maxChainAtoms
	}
	remaining := 1.0
	prev, _ := graph.CreateNode("stick")
	prev.SetLabel("stick\n1.00")
	for k := 0; k < n; k++ {
		mass := view.Breaks[k] * remaining
		remaining *= 1.0 - view.Breaks[k]

		atom, _ := graph.CreateNode(fmt.Sprintf("atom%v", k))
		atom.SetLabel(fmt.Sprintf("atom %v\n%.3f", k, mass))
		rest, _ := graph.CreateNode(fmt.Sprintf("rest%v", k))
		rest.SetLabel(fmt.Sprintf("rest\n%.3f", remaining))

		eb, _ := graph.CreateEdge("", prev, atom)
		eb.SetLabel(fmt.Sprintf("v=%.2f", view.Breaks[k]))
		eb.SetColor(massColor(mass))
		er, _ := graph.CreateEdge("", prev, rest)
		er.SetLabel(fmt.Sprintf("1-v=%.2f", 1.0-view.Breaks[k]))
		er.SetColor(massColor(remaining))
		prev = rest
	}
	txt, _ := renderDotGraph("Stick-Breaking Chain", g, graph)
	fmt.Fprint(w, txt)
}

// massColor maps a probability mass to an edge color.
func massColor(p float64) string {
	switch int(4 * p) {
	case 0:
		return "gray"
	case 1:
		return "green"
	case 2:
		return "orange"
	case 3:
		return "indianred"
	default:
		return "red"
	}
}

// FireUpWeb fires up a new web-server for data visualisation.
func FireUpWeb(addr string) {
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+massesRef, renderAtomMasses)
	http.HandleFunc("/"+decayRef, renderMassDecay)
	http.HandleFunc("/"+densityRef, renderBaseDensity)
	http.HandleFunc("/"+chainRef, renderBreakChain)
	http.ListenAndServe(":"+addr, nil)
}
