package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gogpu/shapestyle"
)

const helpIntro = `# shapeinspect

Browse the style catalog: solid and gradient fills at each **weight**,
two circles layered with any of the **21 blend modes**, and the animated
**shader** effects.

## Keys

| key | action |
|-----|--------|
`

// helpValues lists the choices each picker cycles through.
var helpValues = []struct {
	name   string
	labels []string
}{
	{"Weight", shapestyle.Weights.Labels()},
	{"Fill", shapestyle.Fills.Labels()},
	{"Blend", shapestyle.BlendModes.Labels()},
	{"Shader", shapestyle.ShaderKinds.Labels()},
}

// helpMarkdown builds the help page from the key bindings and catalogs.
func helpMarkdown() string {
	var b strings.Builder
	b.WriteString(helpIntro)
	for _, k := range keys.bindings() {
		h := k.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n## Values\n\n")
	for _, v := range helpValues {
		fmt.Fprintf(&b, "- **%s**: %s\n", v.name, strings.Join(v.labels, ", "))
	}
	return b.String()
}

// renderHelp renders the help page for a terminal of the given width.
func renderHelp(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(helpMarkdown())
}
