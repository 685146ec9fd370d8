package radixtree

// bitSkip returns the largest k' <= k such that bit k' differs between
// firstCode and lastCode (the two endpoints of a code range), or -1 if they
// agree on every bit in [0, k]. It prunes levels where an entire range sits on
// one side of every remaining split, which is what lets the driver terminate
// in far fewer than Bits passes on clustered input.
//
// Only meaningful when KeepSingletons is false; callers with KeepSingletons
// true use the raw bit k unmodified and rely on singleton-forwarder nodes
// instead.
func bitSkip(k int32, firstCode, lastCode uint32) int32 {
	diff := firstCode ^ lastCode
	for ; k >= 0; k-- {
		if diff&(uint32(1)<<uint(k)) != 0 {
			return k
		}
	}
	return -1
}
