package radixtree

import "sort"

// pivot returns the smallest index p in [begin, end] such that
// codes[p]&mask != 0, given that codes[begin:end] is sorted ascending (so the
// predicate is monotonic: false*, then true*). p == end means no element in
// the range has the bit set; p == begin means every element does.
//
// This is a plain lower-bound binary search, the same idiom the rest of this
// lineage reaches for (sort.Search over a monotonic predicate) rather than a
// hand-rolled loop.
func pivot(codes []uint32, begin, end int, mask uint32) int {
	return begin + sort.Search(end-begin, func(i int) bool {
		return codes[begin+i]&mask != 0
	})
}
