package gamesave

import (
	"testing"

	"github.com/arloliu/gamesave/errs"
	"github.com/stretchr/testify/require"
)

func TestRecordSizes(t *testing.T) {
	require.Equal(t, 24, ScoreRecordSize)
	require.Equal(t, 32, ProfileRecordSize)
	require.Equal(t, 240, TopScoresSize)
	require.Equal(t, 160, PilotProfilesSize)
}

func TestName(t *testing.T) {
	require.Equal(t, "GOOSE", NewName("GOOSE").String())
	require.Equal(t, "", Name{}.String())

	long := NewName("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.Equal(t, "ABCDEFGHIJKLMNOP", long.String())
}

func TestScoreRecord_Layout(t *testing.T) {
	rec := ScoreRecord{Name: NewName("ICE"), Score: 0x01020304, Wave: 0x0506, Ship: 0x0708}

	b, err := rec.AppendBinary(nil)
	require.NoError(t, err)
	require.Len(t, b, ScoreRecordSize)
	require.Equal(t, []byte("ICE"), b[:3])
	require.Equal(t, make([]byte, NameSize-3), b[3:NameSize])
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0x06, 0x05, 0x08, 0x07}, b[NameSize:])

	var back ScoreRecord
	require.NoError(t, back.UnmarshalBinary(b))
	require.Equal(t, rec, back)

	require.ErrorIs(t, back.UnmarshalBinary(b[1:]), errs.ErrInvalidRecordSize)
}

func TestProfileRecord_RoundTrip(t *testing.T) {
	rec := ProfileRecord{
		Name:       NewName("VIPER"),
		Ship:       3,
		Difficulty: 2,
		Medals:     0xBEEF,
		Credits:    123456,
		Kills:      789,
		PlayTime:   36000,
	}

	b, err := rec.AppendBinary([]byte{0xAA})
	require.NoError(t, err)
	require.Len(t, b, 1+ProfileRecordSize)
	require.Equal(t, byte(0xAA), b[0], "AppendBinary keeps the prefix")

	var back ProfileRecord
	require.NoError(t, back.UnmarshalBinary(b[1:]))
	require.Equal(t, rec, back)
	require.False(t, back.IsEmpty())
	require.True(t, ProfileRecord{}.IsEmpty())

	require.ErrorIs(t, back.UnmarshalBinary(append(b[1:], 0)), errs.ErrInvalidRecordSize)
}

func TestTopScores_MarshalRoundTrip(t *testing.T) {
	scores := DefaultTopScores()

	b, err := scores.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, TopScoresSize)

	var back TopScores
	require.NoError(t, back.UnmarshalBinary(b))
	require.Equal(t, scores, back)

	before := back
	require.ErrorIs(t, back.UnmarshalBinary(b[:TopScoresSize-1]), errs.ErrInvalidRecordSize)
	require.Equal(t, before, back, "failed unmarshal leaves the table unchanged")
}

func TestTopScores_Insert(t *testing.T) {
	scores := DefaultTopScores()
	last := scores[TopScoresCount-1].Score

	require.False(t, scores.Qualifies(last))
	require.Equal(t, -1, scores.Insert(ScoreRecord{Name: NewName("LOW"), Score: last}))

	pos := scores.Insert(ScoreRecord{Name: NewName("TOP"), Score: 99999})
	require.Equal(t, 0, pos)
	require.Equal(t, "TOP", scores[0].Name.String())
	require.Equal(t, "ACE 01", scores[1].Name.String())
	require.Equal(t, "ACE 09", scores[TopScoresCount-1].Name.String())

	// equal to ACE 02's score: goes after it
	tie := scores[2].Score
	pos = scores.Insert(ScoreRecord{Name: NewName("TIE"), Score: tie})
	require.Equal(t, 3, pos)
	require.Equal(t, "TIE", scores[3].Name.String())

	for i := 1; i < TopScoresCount; i++ {
		require.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
	}
}

func TestPilotProfiles(t *testing.T) {
	profiles := DefaultPilotProfiles()
	require.Equal(t, 0, profiles.FreeSlot())

	for i := range profiles {
		profiles[i] = ProfileRecord{Name: NewName("P"), Credits: uint32(i + 1)}
	}
	require.Equal(t, -1, profiles.FreeSlot())

	profiles[3] = ProfileRecord{}
	require.Equal(t, 3, profiles.FreeSlot())

	b, err := profiles.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, PilotProfilesSize)

	var back PilotProfiles
	require.NoError(t, back.UnmarshalBinary(b))
	require.Equal(t, profiles, back)

	require.ErrorIs(t, back.UnmarshalBinary(nil), errs.ErrInvalidRecordSize)
}
