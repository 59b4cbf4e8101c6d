package vecpath

import (
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

/*
SVG input contract

The vectorizer (potrace or equivalent) emits one SVG file per video frame.
The geometry we care about lives in a small, predictable subset of SVG:

  <path d="...">      M/m, L/l, H/h, V/v, C/c, Z/z commands
  <polyline points>   whitespace/comma separated coordinate pairs
  <polygon points>    as polyline, implicitly closed
  transform="..."     translate(tx[,ty]) and scale(sx[,sy]) compositions

Each "M" inside a single d attribute starts an independent subpath. Treating
subpaths as separate outlines is load-bearing: joining them would draw
spurious connecting strokes between glyphs when the beam is on.

Anything outside this subset (rotate transforms, arcs, smooth curves) is not
produced by the vectorizer and is ignored rather than guessed at.
*/

// svgNode mirrors the element tree just deeply enough to walk geometry and
// transforms. Unknown elements still decode so their children are visited.
type svgNode struct {
	XMLName   xml.Name
	Transform string    `xml:"transform,attr"`
	D         string    `xml:"d,attr"`
	Points    string    `xml:"points,attr"`
	Children  []svgNode `xml:",any"`
}

// transform is a 2D affine matrix (a, b, c, d, e, f):
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type transform [6]float64

var identity = transform{1, 0, 0, 1, 0, 0}

func (m transform) mul(n transform) transform {
	return transform{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

func (m transform) apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ParseSVGFile loads one vectorized frame from disk.
func ParseSVGFile(path string) (*FrameGeometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}
	frame, err := ParseSVG(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return frame, nil
}

// ParseSVG extracts the frame geometry from one SVG document. Outlines that
// fail to parse are skipped with a log line; a document with no usable
// geometry yields an empty frame, not an error.
func ParseSVG(data []byte) (*FrameGeometry, error) {
	var root svgNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("malformed svg document: %w", err)
	}

	frame := &FrameGeometry{}
	walkSVG(&root, identity, frame)
	return frame, nil
}

func walkSVG(node *svgNode, parent transform, frame *FrameGeometry) {
	m := parent
	if node.Transform != "" {
		m = parent.mul(parseTransform(node.Transform))
	}

	switch strings.ToLower(node.XMLName.Local) {
	case "path":
		if node.D != "" {
			subpaths, err := parsePathData(node.D)
			if err != nil {
				log.Printf("vecpath: skipping unparsable path data: %v", err)
				break
			}
			for _, segments := range subpaths {
				appendOutline(frame, transformSegments(segments, m))
			}
		}
	case "polyline", "polygon":
		pts, err := parsePointList(node.Points)
		if err != nil {
			log.Printf("vecpath: skipping unparsable point list: %v", err)
			break
		}
		if len(pts) >= 2 {
			if strings.EqualFold(node.XMLName.Local, "polygon") {
				pts = append(pts, pts[0])
			}
			segments := make([]Segment, 0, len(pts)-1)
			for i := 1; i < len(pts); i++ {
				segments = append(segments, Segment{Kind: SegmentLine, Start: pts[i-1], End: pts[i]})
			}
			appendOutline(frame, transformSegments(segments, m))
		}
	}

	for i := range node.Children {
		walkSVG(&node.Children[i], m, frame)
	}
}

func appendOutline(frame *FrameGeometry, segments []Segment) {
	if o := SampleSegments(segments); o != nil {
		frame.Outlines = append(frame.Outlines, o)
	}
}

func transformSegments(segments []Segment, m transform) []Segment {
	if m == identity {
		return segments
	}
	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = Segment{
			Kind:  s.Kind,
			Start: m.apply(s.Start),
			C1:    m.apply(s.C1),
			C2:    m.apply(s.C2),
			End:   m.apply(s.End),
		}
	}
	return out
}

// parseTransform handles the translate/scale compositions potrace emits.
// Unsupported transform functions are ignored.
func parseTransform(s string) transform {
	m := identity
	for {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		close := strings.IndexByte(s[open:], ')')
		if close < 0 {
			break
		}
		name := strings.ToLower(strings.TrimSpace(s[:open]))
		args := splitFloats(s[open+1 : open+close])
		s = s[open+close+1:]

		switch {
		case name == "translate" && len(args) >= 1:
			ty := 0.0
			if len(args) > 1 {
				ty = args[1]
			}
			m = m.mul(transform{1, 0, 0, 1, args[0], ty})
		case name == "scale" && len(args) >= 1:
			sy := args[0]
			if len(args) > 1 {
				sy = args[1]
			}
			m = m.mul(transform{args[0], 0, 0, sy, 0, 0})
		}
	}
	return m
}

func splitFloats(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parsePointList(s string) ([]Point, error) {
	coords := splitFloats(s)
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d in point list", len(coords))
	}
	pts := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, Point{X: coords[i], Y: coords[i+1]})
	}
	return pts, nil
}

// pathScanner tokenizes an SVG path d attribute: single-letter commands and
// floating point numbers separated by whitespace or commas.
type pathScanner struct {
	s string
	i int
}

func (p *pathScanner) skipSeparators() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\n', '\r', ',':
			p.i++
		default:
			return
		}
	}
}

// peekCommand reports whether the next token is a command letter.
func (p *pathScanner) peekCommand() (byte, bool) {
	p.skipSeparators()
	if p.i >= len(p.s) {
		return 0, false
	}
	c := p.s[p.i]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return c, true
	}
	return 0, false
}

func (p *pathScanner) nextCommand() (byte, bool) {
	c, ok := p.peekCommand()
	if ok {
		p.i++
	}
	return c, ok
}

func (p *pathScanner) done() bool {
	p.skipSeparators()
	return p.i >= len(p.s)
}

func (p *pathScanner) nextNumber() (float64, error) {
	p.skipSeparators()
	start := p.i
	if p.i < len(p.s) && (p.s[p.i] == '+' || p.s[p.i] == '-') {
		p.i++
	}
	seenDot := false
	for p.i < len(p.s) {
		c := p.s[p.i]
		if c >= '0' && c <= '9' {
			p.i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.i++
			continue
		}
		if (c == 'e' || c == 'E') && p.i > start {
			p.i++
			if p.i < len(p.s) && (p.s[p.i] == '+' || p.s[p.i] == '-') {
				p.i++
			}
			continue
		}
		break
	}
	if p.i == start {
		return 0, fmt.Errorf("expected number at offset %d in path data", start)
	}
	v, err := strconv.ParseFloat(p.s[start:p.i], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q at offset %d: %w", p.s[start:p.i], start, err)
	}
	return v, nil
}

func (p *pathScanner) nextPair() (Point, error) {
	x, err := p.nextNumber()
	if err != nil {
		return Point{}, err
	}
	y, err := p.nextNumber()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// parsePathData converts a d attribute into segment lists, one per subpath.
func parsePathData(d string) ([][]Segment, error) {
	sc := &pathScanner{s: d}

	var subpaths [][]Segment
	var current []Segment

	cur := Point{}        // pen position
	start := Point{}      // first point of the current subpath
	var cmd byte          // active command (M becomes L after first pair)
	haveSubpath := false

	flush := func() {
		if haveSubpath && len(current) > 0 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for !sc.done() {
		if c, ok := sc.nextCommand(); ok {
			cmd = c
			if cmd == 'Z' || cmd == 'z' {
				// Close the subpath back to its first point.
				if haveSubpath && cur != start {
					current = append(current, Segment{Kind: SegmentLine, Start: cur, End: start})
					cur = start
				}
				continue
			}
			continue
		}

		relative := cmd >= 'a' && cmd <= 'z'

		switch cmd {
		case 'M', 'm':
			p, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			if relative {
				p.X += cur.X
				p.Y += cur.Y
			}
			flush()
			cur, start = p, p
			haveSubpath = true
			// Subsequent pairs after a moveto are implicit linetos.
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}

		case 'L', 'l':
			p, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			if relative {
				p.X += cur.X
				p.Y += cur.Y
			}
			current = append(current, Segment{Kind: SegmentLine, Start: cur, End: p})
			cur = p

		case 'H', 'h':
			x, err := sc.nextNumber()
			if err != nil {
				return nil, err
			}
			if relative {
				x += cur.X
			}
			p := Point{X: x, Y: cur.Y}
			current = append(current, Segment{Kind: SegmentLine, Start: cur, End: p})
			cur = p

		case 'V', 'v':
			y, err := sc.nextNumber()
			if err != nil {
				return nil, err
			}
			if relative {
				y += cur.Y
			}
			p := Point{X: cur.X, Y: y}
			current = append(current, Segment{Kind: SegmentLine, Start: cur, End: p})
			cur = p

		case 'C', 'c':
			c1, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			c2, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			p, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			if relative {
				c1.X += cur.X
				c1.Y += cur.Y
				c2.X += cur.X
				c2.Y += cur.Y
				p.X += cur.X
				p.Y += cur.Y
			}
			current = append(current, Segment{Kind: SegmentCubic, Start: cur, C1: c1, C2: c2, End: p})
			cur = p

		case 'Q', 'q':
			c1, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			p, err := sc.nextPair()
			if err != nil {
				return nil, err
			}
			if relative {
				c1.X += cur.X
				c1.Y += cur.Y
				p.X += cur.X
				p.Y += cur.Y
			}
			current = append(current, Segment{Kind: SegmentQuadratic, Start: cur, C1: c1, End: p})
			cur = p

		case 0:
			return nil, fmt.Errorf("path data begins with coordinates, not a command")

		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}
	}

	flush()
	return subpaths, nil
}
