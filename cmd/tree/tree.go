package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/joshuapare/dirtree/tree"
)

var errInvalidDepth = errors.New("invalid depth")

func runTree(args []string) error {
	root := args[0]

	opts := tree.DefaultOptions()
	if len(args) > 1 {
		depth, err := parseDepth(args[1])
		if err != nil {
			return err
		}
		opts.MaxDepth = depth
	}

	printVerbose("Rendering %s (max depth %d)\n", root, opts.MaxDepth)

	r := tree.New(tree.OSFS{}, stdout, opts)
	if err := r.Render(root); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	stats := r.Stats()
	printVerbose("%d directories, %d files\n", stats.Dirs, stats.Files)

	return nil
}

// parseDepth parses a non-negative depth limit. The limit fits in 31 bits so
// it stays non-negative as an int on 32-bit platforms.
func parseDepth(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", errInvalidDepth, s, err)
	}
	return int(n), nil
}
