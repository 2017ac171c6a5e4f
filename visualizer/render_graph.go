package visualizer

import (
	"bytes"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// dotGraphHtml is the HTML shell for a dot graph. The dot source is
// embedded verbatim and laid out in the browser via the graphviz wasm
// build, so the server ships no SVG of its own. DOT and TITLE are the
// substitution markers.
const dotGraphHtml = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>TITLE</title>

    <script>
        const dot = ` + "`DOT`" + `;
    </script>
</head>

<body>
    <h1>TITLE</h1>
    <div id="graph"></div>
    <script type="module">
        import { Graphviz } from "https://cdn.jsdelivr.net/npm/@hpcc-js/wasm/dist/index.js";
        if (Graphviz) {
            const graphviz = await Graphviz.load();
            const svg = graphviz.layout(dot, "svg", "dot");
            document.getElementById("graph").innerHTML = svg;
        }
    </script>
</body>
</html>
`

// renderDotGraph renders the stick-breaking chain graph as an HTML document.
func renderDotGraph(title string, g *graphviz.Graphviz, graph *cgraph.Graph) (string, error) {
	var buf bytes.Buffer
	if err := g.Render(graph, "dot", &buf); err != nil {
		return "", err
	}
	page := strings.Replace(dotGraphHtml, "TITLE", title, -1)
	return strings.Replace(page, "DOT", buf.String(), 1), nil
}
