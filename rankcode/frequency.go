package rankcode

import (
	"cmp"
	"slices"
)

// Histogram counts occurrences of each byte value within one input buffer.
type Histogram [NumRanks]int

// BuildHistogram returns the histogram of data.
func BuildHistogram(data []byte) Histogram {
	var h Histogram
	h.Add(data)

	return h
}

// Add counts every byte of data into the histogram.
func (h *Histogram) Add(data []byte) {
	for _, b := range data {
		h[b]++
	}
}

// Distinct returns the number of byte values with a non-zero count.
func (h *Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}

	return n
}

// RankTable returns the distinct byte values ordered by descending count.
//
// Equal counts keep ascending byte value order. The tie-break only affects the
// compression ratio: the table is stored in the blob and used verbatim on decode.
func (h *Histogram) RankTable() RankTable {
	table := make(RankTable, 0, h.Distinct())
	for v, c := range h {
		if c > 0 {
			table = append(table, byte(v))
		}
	}

	slices.SortStableFunc(table, func(a, b byte) int {
		return cmp.Compare(h[b], h[a])
	})

	return table
}

// BitCount returns the number of bits the input described by h encodes to under table.
//
// Every byte counted in h must be present in table.
func (h *Histogram) BitCount(table RankTable) uint64 {
	var total uint64
	for rank, v := range table {
		total += uint64(h[v]) * uint64(CodeLength(rank))
	}

	return total
}

// RankTable is an ordered list of distinct byte values; the index of a value is its rank.
type RankTable []byte

// Rank builds the rank table for data. It is empty for empty data.
func Rank(data []byte) RankTable {
	h := BuildHistogram(data)
	return h.RankTable()
}

// TabCount returns the number of entries in the table.
func (t RankTable) TabCount() int {
	return len(t)
}

// Ranks returns the inverse lookup from byte value to rank.
//
// Values absent from the table map to rank 0; callers only look up values that occur.
func (t RankTable) Ranks() [NumRanks]uint8 {
	var ranks [NumRanks]uint8
	for rank, v := range t {
		ranks[v] = uint8(rank)
	}

	return ranks
}
