package grocerylist

import (
	"fmt"
	"slices"
	"strings"
)

// Partition distributes items into buckets according to mode.
//
// In ModeSingle the result holds one "All" bucket. In ModeSplitTwo it holds
// "All", then the first named bucket with the items at even positions, then
// the second with the items at odd positions. Names only matter in
// ModeSplitTwo. The input slice is never aliased or modified and every
// bucket is non-nil.
func Partition(items []string, mode Mode, names Names) (*Buckets, error) {
	all := slices.Clone(items)
	if all == nil {
		all = []string{}
	}

	switch mode {
	case ModeSingle:
		return &Buckets{
			Mode: mode,
			List: []Bucket{{Name: AllBucket, Items: all}},
		}, nil

	case ModeSplitTwo:
		if err := names.Validate(); err != nil {
			return nil, err
		}
		names = names.orDefault()

		first := make([]string, 0, (len(items)+1)/2)
		second := make([]string, 0, len(items)/2)
		for i, item := range items {
			if i%2 == 0 {
				first = append(first, item)
			} else {
				second = append(second, item)
			}
		}
		return &Buckets{
			Mode: mode,
			List: []Bucket{
				{Name: AllBucket, Items: all},
				{Name: names.First, Items: first},
				{Name: names.Second, Items: second},
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

// SkipBlank returns the items that contain something other than whitespace.
// The result is a new slice; items is not modified.
func SkipBlank(items []string) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	return kept
}
