// Package trim reduces a classified GFA graph to the sub-graph induced by
// a chosen subset of its paths and walks. The pipeline is a chain of pure
// stages: select records by name, decode them, aggregate keep-sets, filter
// the raw segment/link/jump lines against those sets. Any failure aborts
// the run before output exists; there is no skip-and-continue, because a
// partially filtered graph would be silently wrong.
package trim

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/gfatrim-dev/gfatrim/internal/gfa"
	"github.com/gfatrim-dev/gfatrim/internal/parallel"
)

// ErrUnknownSelection marks a requested path or walk name that matches
// nothing in the graph.
var ErrUnknownSelection = errors.New("unknown path or walk name")

// Options configures a single trim run.
type Options struct {
	// Names lists the path/walk names to retain. Empty keeps everything.
	Names []string

	// Workers is the fork-join width for the parallel stages.
	// Zero means one worker per core.
	Workers int

	// AllowMissing downgrades selection names that match no path or walk
	// from an error to a no-op.
	AllowMissing bool

	// KeepAllSegments/Links/Jumps bypass filtering for that record kind;
	// the lines pass through verbatim.
	KeepAllSegments bool
	KeepAllLinks    bool
	KeepAllJumps    bool
}

// Run filters the classified graph and returns the surviving buckets.
// The input buckets are not modified.
func Run(b *gfa.Buckets, opts Options) (*gfa.Buckets, error) {
	workers := parallel.Workers(opts.Workers)

	paths, walks, err := selectRecords(b, opts, workers)
	if err != nil {
		return nil, err
	}

	logrus.Info("collecting nodes and edges to keep")
	keep, err := collectKeepSet(paths, walks, workers)
	if err != nil {
		return nil, err
	}

	out := &gfa.Buckets{
		Headers:  b.Headers,
		Segments: b.Segments,
		Paths:    paths,
		Walks:    walks,
		Links:    b.Links,
		Jumps:    b.Jumps,
		Other:    b.Other,
	}

	if !opts.KeepAllSegments {
		logrus.Info("removing unreferenced segments")
		out.Segments, err = filterSegments(b.Segments, keep, workers)
		if err != nil {
			return nil, err
		}
	}
	if !opts.KeepAllLinks {
		logrus.Info("removing untraversed links")
		out.Links, err = filterEdges(b.Links, keep.HasLink, workers)
		if err != nil {
			return nil, err
		}
	}
	if !opts.KeepAllJumps {
		logrus.Info("removing untraversed jumps")
		out.Jumps, err = filterEdges(b.Jumps, keep.HasJump, workers)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// selectRecords narrows the path and walk buckets to the requested names.
// With no names requested every record is retained.
func selectRecords(b *gfa.Buckets, opts Options, workers int) (paths, walks []string, err error) {
	if len(opts.Names) == 0 {
		return b.Paths, b.Walks, nil
	}

	wanted := make(map[string]bool, len(opts.Names))
	for _, name := range opts.Names {
		wanted[name] = true
	}

	if !opts.AllowMissing {
		if err := checkSelection(b, opts.Names, workers); err != nil {
			return nil, nil, err
		}
	}

	logrus.Info("filtering paths and walks by name")
	paths, err = parallel.Filter(b.Paths, workers, func(line string) (bool, error) {
		name, err := gfa.PathName(line)
		if err != nil {
			return false, err
		}
		return wanted[name], nil
	})
	if err != nil {
		return nil, nil, err
	}
	walks, err = parallel.Filter(b.Walks, workers, func(line string) (bool, error) {
		name, err := gfa.WalkName(line)
		if err != nil {
			return false, err
		}
		return wanted[name], nil
	})
	if err != nil {
		return nil, nil, err
	}
	return paths, walks, nil
}

// checkSelection fails the run when a requested name appears nowhere in
// the graph. Silently retaining nothing for a typo would look like a
// successful trim while dropping the whole sub-graph the caller wanted.
func checkSelection(b *gfa.Buckets, names []string, workers int) error {
	pathNames, err := parallel.Map(b.Paths, workers, gfa.PathName)
	if err != nil {
		return err
	}
	walkNames, err := parallel.Map(b.Walks, workers, gfa.WalkName)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(pathNames)+len(walkNames))
	for _, name := range pathNames {
		present[name] = true
	}
	for _, name := range walkNames {
		present[name] = true
	}

	var merr *multierror.Error
	for _, name := range names {
		if !present[name] {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownSelection, name))
		}
	}
	return merr.ErrorOrNil()
}

// collectKeepSet decodes every retained path and walk in parallel and
// reduces the per-record results into one keep-set. The reduction is a
// set union, so the parallel split cannot change the outcome.
func collectKeepSet(paths, walks []string, workers int) (*gfa.KeepSet, error) {
	fromPaths, err := parallel.Map(paths, workers, decodePathLine)
	if err != nil {
		return nil, err
	}
	fromWalks, err := parallel.Map(walks, workers, decodeWalkLine)
	if err != nil {
		return nil, err
	}

	decoded := make([]gfa.Decoded, 0, len(fromPaths)+len(fromWalks))
	decoded = append(decoded, fromPaths...)
	decoded = append(decoded, fromWalks...)

	keep := parallel.Reduce(decoded, workers, gfa.NewKeepSet,
		func(acc *gfa.KeepSet, d gfa.Decoded) *gfa.KeepSet {
			acc.Add(d)
			return acc
		},
		func(a, b *gfa.KeepSet) *gfa.KeepSet {
			a.Merge(b)
			return a
		})
	return keep, nil
}

func decodePathLine(line string) (gfa.Decoded, error) {
	nodeList, err := gfa.PathNodeList(line)
	if err != nil {
		return gfa.Decoded{}, err
	}
	d, err := gfa.DecodePath(nodeList)
	if err != nil {
		name, nameErr := gfa.PathName(line)
		if nameErr != nil {
			name = "?"
		}
		return gfa.Decoded{}, fmt.Errorf("path %q: %w", name, err)
	}
	return d, nil
}

func decodeWalkLine(line string) (gfa.Decoded, error) {
	walk, err := gfa.WalkString(line)
	if err != nil {
		return gfa.Decoded{}, err
	}
	d, err := gfa.DecodeWalk(walk)
	if err != nil {
		name, nameErr := gfa.WalkName(line)
		if nameErr != nil {
			name = "?"
		}
		return gfa.Decoded{}, fmt.Errorf("walk %q: %w", name, err)
	}
	return d, nil
}

func filterSegments(lines []string, keep *gfa.KeepSet, workers int) ([]string, error) {
	return parallel.Filter(lines, workers, func(line string) (bool, error) {
		id, err := gfa.SegmentID(line)
		if err != nil {
			return false, err
		}
		return keep.HasNode(id), nil
	})
}

func filterEdges(lines []string, has func(gfa.Edge) bool, workers int) ([]string, error) {
	return parallel.Filter(lines, workers, func(line string) (bool, error) {
		edge, err := gfa.EdgeEndpoints(line)
		if err != nil {
			return false, err
		}
		return has(edge), nil
	})
}
