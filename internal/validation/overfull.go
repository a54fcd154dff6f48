package validation

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// overfullPattern matches warnings such as
// "Overfull \hbox (12.3pt too wide) in paragraph at lines 42--43"
var overfullPattern = regexp.MustCompile(`^Overfull \\([hv])box \(([0-9.]+)pt too (wide|high)\)(?: .* at lines? ([0-9]+))?`)

// OverfullBox is a box LaTeX could not fit within the page margins
type OverfullBox struct {
	Kind   string  // "hbox" or "vbox"
	Points float64 // Amount of overflow
	Line   int     // Source line, 0 when LaTeX did not report one
}

// FindOverfullBoxes scans engine output for overfull box warnings. Boxes no larger
// than tolerance points are ignored.
func FindOverfullBoxes(logOutput string, tolerance float64) []OverfullBox {
	var boxes []OverfullBox
	scanner := bufio.NewScanner(strings.NewReader(logOutput))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		m := overfullPattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}

		points, err := strconv.ParseFloat(m[2], 64)
		if err != nil || points <= tolerance {
			continue
		}

		box := OverfullBox{Kind: m[1] + "box", Points: points}
		if m[4] != "" {
			box.Line, _ = strconv.Atoi(m[4])
		}
		boxes = append(boxes, box)
	}

	return boxes
}
