package bmssp

import (
	"container/heap"
	"math"
	"sort"
)

// blockD is the bulk-access priority structure ("D") owned by one recursive
// driver invocation. It approximates a priority queue for workloads that do
// many inserts per extraction and occasionally pull a large batch:
//
//   - current: authoritative map key → best value ever inserted (under eps).
//   - D1: append-only buffer of recent inserts; may hold stale records.
//   - D0: list of blocks, each sorted by (value, key); their concatenation
//     is globally sorted right after a rebuild.
//
// Inserts cost O(1) amortized; the price is paid at merge points, where D0
// is rebuilt from current in O(|current| log |current|). Records in D0/D1
// whose (key, value) no longer match current are stale and skipped lazily,
// the same discipline the dijkstra package applies to its heap duplicates.
type blockD struct {
	current        map[int]float64
	d0             [][]dItem
	d1             []dItem
	blockSize      int
	mergeThreshold int
	bGlobal        float64
}

// dItem is one (key, value) record in D0 or D1.
type dItem struct {
	key int
	val float64
}

// newBlockD builds an empty structure. blockSizeHint is clamped to the
// structural minimum; the merge threshold tracks the block size but never
// drops below minMergeThreshold. bGlobal is the bound pull reports once
// the structure drains.
func newBlockD(blockSizeHint int, bGlobal float64) *blockD {
	bs := blockSizeHint
	if bs < minBlockSize {
		bs = minBlockSize
	}
	mt := bs
	if mt < minMergeThreshold {
		mt = minMergeThreshold
	}

	return &blockD{
		current:        make(map[int]float64),
		blockSize:      bs,
		mergeThreshold: mt,
		bGlobal:        bGlobal,
	}
}

// insert records key→val if it improves on the best known value.
// Worse or equal-within-eps values are discarded silently; improvements
// land in current and are buffered in D1, triggering a rebuild once the
// buffer reaches the merge threshold.
func (d *blockD) insert(key int, val float64) {
	cur, ok := d.current[key]
	if ok && val+eps >= cur {
		return
	}
	d.current[key] = val
	d.d1 = append(d.d1, dItem{key: key, val: val})
	if len(d.d1) >= d.mergeThreshold {
		d.mergeRebuild()
	}
}

// batchPrepend applies the insert improvement test to every entry, then
// checks the merge threshold once at the end. The name reflects the
// driver's use (feeding a batch of earlier-band candidates back in), not
// any ordering guarantee: ordering is always re-derived from the values.
func (d *blockD) batchPrepend(entries []dItem) {
	for _, e := range entries {
		cur, ok := d.current[e.key]
		if ok && e.val+eps >= cur {
			continue
		}
		d.current[e.key] = e.val
		d.d1 = append(d.d1, e)
	}
	if len(d.d1) >= d.mergeThreshold {
		d.mergeRebuild()
	}
}

// mergeRebuild materializes current sorted by (value, key), chops it into
// blocks of blockSize, installs them as D0 and clears D1. After a rebuild
// the D0 concatenation is exactly current in sorted order.
func (d *blockD) mergeRebuild() {
	all := make([]dItem, 0, len(d.current))
	for k, v := range d.current {
		all = append(all, dItem{key: k, val: v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].val != all[j].val {
			return all[i].val < all[j].val
		}

		return all[i].key < all[j].key
	})

	d.d0 = d.d0[:0]
	for i := 0; i < len(all); i += d.blockSize {
		end := i + d.blockSize
		if end > len(all) {
			end = len(all)
		}
		block := make([]dItem, end-i)
		copy(block, all[i:end])
		d.d0 = append(d.d0, block)
	}
	d.d1 = d.d1[:0]
}

// pull removes up to m keys with the smallest values and returns them in
// (value, key) ascending order, together with Bi: the smallest value still
// present afterwards, or bGlobal if the structure drained (or if every
// remaining value already exceeds it).
func (d *blockD) pull(m int) ([]int, float64) {
	out := make([]int, 0, m)
	if len(d.current) == 0 {
		return out, d.bGlobal
	}

	// 1) A pull wants block heads to scan; fold the buffer in if D0 is bare.
	if len(d.d0) == 0 && len(d.d1) > 0 {
		d.mergeRebuild()
	}

	// 2) Seed a min-heap with every live record of D0 and D1. A block's
	//    later records must compete too: once its head is taken, the next
	//    smallest value may sit right behind it in the same block.
	h := make(pullHeap, 0, len(d.current)+len(d.d1))
	for _, block := range d.d0 {
		for _, it := range block {
			if _, ok := d.current[it.key]; ok {
				h = append(h, pullEntry{val: it.val, key: it.key})
			}
		}
	}
	for _, it := range d.d1 {
		if _, ok := d.current[it.key]; ok {
			h = append(h, pullEntry{val: it.val, key: it.key})
		}
	}
	heap.Init(&h)

	// 3) Extract minima, skipping stale records: a key already taken, or a
	//    value drifted further than pullStaleEps from the authoritative one.
	for h.Len() > 0 && len(out) < m {
		he := heap.Pop(&h).(pullEntry)
		cur, ok := d.current[he.key]
		if !ok {
			continue
		}
		if math.Abs(cur-he.val) > pullStaleEps {
			continue
		}
		out = append(out, he.key)
		delete(d.current, he.key)
	}

	// 4) Removals invalidated block heads; rebuild to restore the D0/D1
	//    invariant for the next pull.
	if len(out) > 0 {
		d.mergeRebuild()
	}

	// 5) Bi is the smallest surviving value, capped by the global bound.
	bi := d.bGlobal
	for _, v := range d.current {
		if v < bi {
			bi = v
		}
	}

	return out, bi
}

// isEmpty reports whether no key is present.
func (d *blockD) isEmpty() bool { return len(d.current) == 0 }

// minValue returns the smallest value present, or bGlobal when the
// structure is empty (or every value exceeds the global bound).
func (d *blockD) minValue() float64 {
	min := d.bGlobal
	for _, v := range d.current {
		if v < min {
			min = v
		}
	}

	return min
}

// pullEntry is one candidate in pull's scan heap. Provenance (block vs
// buffer) is deliberately not recorded: staleness is judged against current
// alone, so both kinds of record compete on equal terms.
type pullEntry struct {
	val float64
	key int
}

// pullHeap is a min-heap of pullEntry ordered by (val, key) ascending,
// mirroring the nodePQ idiom used by the dijkstra package.
type pullHeap []pullEntry

func (h pullHeap) Len() int { return len(h) }

func (h pullHeap) Less(i, j int) bool {
	if h[i].val != h[j].val {
		return h[i].val < h[j].val
	}

	return h[i].key < h[j].key
}

func (h pullHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pullHeap) Push(x interface{}) { *h = append(*h, x.(pullEntry)) }

func (h *pullHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
