package section

const (
	BitCountSize        = 4                           // size of the BitCount field in bytes
	TabCountSize        = 1                           // size of the TabCount-1 field in bytes
	RankHeaderFixedSize = BitCountSize + TabCountSize // bytes preceding the rank table
	MaxTabCount         = 256                         // one entry per possible byte value
	MinTabCount         = 1                           // smallest table describable by the header
	RankTableOffset     = RankHeaderFixedSize         // byte offset where the rank table starts
	MaxRankHeaderSize   = RankHeaderFixedSize + MaxTabCount
)
