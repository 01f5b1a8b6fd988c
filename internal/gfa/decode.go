package gfa

import (
	"fmt"
	"regexp"
	"strings"
)

// walkStepRE matches one step of a W record walk string: a direction mark
// followed by a segment id made of visible characters other than the
// direction marks themselves.
var walkStepRE = regexp.MustCompile(`([><])([!-;=?-~]+)`)

// DecodePath expands a P record's node-list string into the oriented nodes
// it visits and the edges it traverses. The separator after each step
// decides the kind of the edge to the following step: `,` continues the
// contig (link), `;` is a discontiguous hop (jump). Only the final step may
// lack a separator.
func DecodePath(nodeList string) (Decoded, error) {
	var d Decoded
	var prev OrientedNode
	prevKind := LinkEdge
	for i, raw := range splitInclusive(nodeList, ",;") {
		step := strings.TrimSpace(raw)
		kind := LinkEdge
		switch {
		case strings.HasSuffix(step, ";"):
			kind = JumpEdge
			step = step[:len(step)-1]
		case strings.HasSuffix(step, ","):
			step = step[:len(step)-1]
		}

		node, err := parseOrientedStep(step)
		if err != nil {
			return Decoded{}, err
		}
		if i > 0 {
			edge := Edge{From: prev, To: node}
			if prevKind == JumpEdge {
				d.Jumps = append(d.Jumps, edge)
			} else {
				d.Links = append(d.Links, edge)
			}
		}
		d.Nodes = append(d.Nodes, node)
		prev, prevKind = node, kind
	}
	return d, nil
}

// DecodeWalk expands a W record's walk string. Steps are `>id` (forward)
// or `<id` (reverse) with no separators; consecutive steps form link
// edges. Walks never encode jumps. Any byte outside a valid step makes the
// whole string unparseable rather than silently dropping it.
func DecodeWalk(walk string) (Decoded, error) {
	walk = strings.TrimSpace(walk)
	matches := walkStepRE.FindAllStringSubmatch(walk, -1)
	consumed := 0
	for _, m := range matches {
		consumed += len(m[0])
	}
	if consumed != len(walk) {
		return Decoded{}, fmt.Errorf("%w: walk string %q has bytes outside >/< steps", ErrParse, walk)
	}

	var d Decoded
	for i, m := range matches {
		node := OrientedNode{ID: m[2], Forward: m[1] == ">"}
		if i > 0 {
			d.Links = append(d.Links, Edge{From: d.Nodes[i-1], To: node})
		}
		d.Nodes = append(d.Nodes, node)
	}
	return d, nil
}

func parseOrientedStep(step string) (OrientedNode, error) {
	forward := strings.HasSuffix(step, "+")
	id := strings.TrimSuffix(strings.TrimSuffix(step, "+"), "-")
	if id == "" {
		return OrientedNode{}, fmt.Errorf("%w: path step %q has no segment id", ErrParse, step)
	}
	return OrientedNode{ID: id, Forward: forward}, nil
}

// splitInclusive splits s after every occurrence of any byte in seps,
// keeping the separator at the end of its piece so the caller can recover
// which separator terminated each step.
func splitInclusive(s, seps string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(seps, s[i]) >= 0 {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
