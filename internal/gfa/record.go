// Package gfa holds the data model for GFA assembly graphs: record
// classification by tag, the field positions the trimmer inspects, and
// decoding of path/walk strings into oriented nodes and edges.
package gfa

import (
	"fmt"
	"strings"
)

// Field positions defined by the GFA 1.1 record layouts.
const (
	segmentIDField  = 1
	pathNameField   = 1
	pathNodesField  = 2
	walkSampleField = 1
	walkStringField = 6
	edgeToOrient    = 4 // highest field an L/J line must carry
)

// Buckets groups the lines of a graph file by record tag, preserving each
// group's original line order.
type Buckets struct {
	Headers  []string
	Segments []string
	Paths    []string
	Walks    []string
	Links    []string
	Jumps    []string
	Other    []string
}

// Classify splits raw lines into per-tag buckets by leading character.
// Lines with an unrecognized tag land in Other and pass through untouched.
func Classify(lines []string) *Buckets {
	b := &Buckets{}
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "S"):
			b.Segments = append(b.Segments, line)
		case strings.HasPrefix(line, "L"):
			b.Links = append(b.Links, line)
		case strings.HasPrefix(line, "P"):
			b.Paths = append(b.Paths, line)
		case strings.HasPrefix(line, "W"):
			b.Walks = append(b.Walks, line)
		case strings.HasPrefix(line, "J"):
			b.Jumps = append(b.Jumps, line)
		case strings.HasPrefix(line, "H"):
			b.Headers = append(b.Headers, line)
		default:
			b.Other = append(b.Other, line)
		}
	}
	return b
}

// Lines flattens the buckets back into output order: headers, segments,
// paths, walks, links, jumps, then unrecognized lines.
func (b *Buckets) Lines() []string {
	out := make([]string, 0, len(b.Headers)+len(b.Segments)+len(b.Paths)+
		len(b.Walks)+len(b.Links)+len(b.Jumps)+len(b.Other))
	out = append(out, b.Headers...)
	out = append(out, b.Segments...)
	out = append(out, b.Paths...)
	out = append(out, b.Walks...)
	out = append(out, b.Links...)
	out = append(out, b.Jumps...)
	out = append(out, b.Other...)
	return out
}

func field(line string, idx int, kind string) (string, error) {
	fields := strings.Split(line, "\t")
	if idx >= len(fields) {
		return "", fmt.Errorf("%w: %s line has %d fields, need at least %d: %q",
			ErrMalformedRecord, kind, len(fields), idx+1, line)
	}
	return fields[idx], nil
}

// SegmentID extracts the segment id from an S line.
func SegmentID(line string) (string, error) {
	return field(line, segmentIDField, "segment")
}

// PathName extracts the path name from a P line.
func PathName(line string) (string, error) {
	return field(line, pathNameField, "path")
}

// PathNodeList extracts the comma/semicolon-separated node list from a P line.
func PathNodeList(line string) (string, error) {
	return field(line, pathNodesField, "path")
}

// WalkName extracts the sample name from a W line. Walks carry no single
// name field; the sample column is what selection lists match against.
func WalkName(line string) (string, error) {
	return field(line, walkSampleField, "walk")
}

// WalkString extracts the ></< walk string from a W line.
func WalkString(line string) (string, error) {
	return field(line, walkStringField, "walk")
}

// EdgeEndpoints parses the two oriented endpoints of an L or J line.
func EdgeEndpoints(line string) (Edge, error) {
	fields := strings.Split(line, "\t")
	if len(fields) <= edgeToOrient {
		return Edge{}, fmt.Errorf("%w: edge line has %d fields, need at least %d: %q",
			ErrMalformedRecord, len(fields), edgeToOrient+1, line)
	}
	return Edge{
		From: OrientedNode{ID: fields[1], Forward: strings.Contains(fields[2], "+")},
		To:   OrientedNode{ID: fields[3], Forward: strings.Contains(fields[4], "+")},
	}, nil
}
