package pfile

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/dshills/logicrando/pkg/logic"
)

// SVGOptions configures the reachability/placement debug render.
type SVGOptions struct {
	Width      int
	Height     int
	NodeRadius int
	Margin     int
	Title      string
}

// DefaultSVGOptions returns reasonable canvas proportions, scaled down
// since this domain renders one node per check and checks typically
// outnumber a dungeon's rooms many times over.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1600,
		Height:     1600,
		NodeRadius: 10,
		Margin:     60,
		Title:      "Reachability & Placement",
	}
}

// ExportSVG renders a debug view of l's finished state: every check,
// laid out on a circle (sorted by name for a deterministic render),
// colored green if accessible (full_inventory holds its bit) or red
// otherwise, labeled with the item placed there if any. A check's "kind"
// here is just reachable/unreachable, so the render stays a plain
// circular layout with no archetype or connector-type legend.
func ExportSVG(l *logic.Logic, opts SVGOptions) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("pfile: cannot render a nil Logic")
	}
	if opts.Width <= 0 {
		opts.Width = 1600
	}
	if opts.Height <= 0 {
		opts.Height = 1600
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 10
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	names := make([]string, 0, len(l.Checks()))
	for name := range l.Checks() {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	checks := l.Checks()
	full := l.FullInventory()
	placement := l.Placement()

	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height) / 2
	radius := math.Min(float64(opts.Width), float64(opts.Height))/2 - float64(opts.Margin) - float64(opts.NodeRadius)

	angleStep := 2 * math.Pi / float64(len(names))
	for i, name := range names {
		angle := float64(i) * angleStep
		x := int(centerX + radius*math.Cos(angle))
		y := int(centerY + radius*math.Sin(angle))

		color := "#f56565"
		if id, ok := checks[name]; ok && full.Has(id) {
			color = "#48bb78"
		}
		canvas.Circle(x, y, opts.NodeRadius, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1;opacity:0.9", color))

		label := name
		if item, ok := placement.ItemAt(name); ok {
			label = fmt.Sprintf("%s: %s", name, item)
		}
		canvas.Text(x, y+opts.NodeRadius+12, label,
			"text-anchor:middle;font-size:9px;font-family:monospace;fill:#e2e8f0")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders l and writes it to path with 0644 permissions.
func SaveSVGToFile(l *logic.Logic, path string, opts SVGOptions) error {
	data, err := ExportSVG(l, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
