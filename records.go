package gamesave

import (
	"bytes"
	"fmt"

	"github.com/arloliu/gamesave/endian"
	"github.com/arloliu/gamesave/errs"
)

// NameSize is the fixed width of a pilot name field, zero padded.
const NameSize = 16

const (
	// ScoreRecordSize is the serialized size of a ScoreRecord.
	ScoreRecordSize = NameSize + 4 + 2 + 2
	// ProfileRecordSize is the serialized size of a ProfileRecord.
	ProfileRecordSize = NameSize + 1 + 1 + 2 + 4 + 4 + 4

	// TopScoresCount is the number of entries in the high-score table.
	TopScoresCount = 10
	// PilotProfilesCount is the number of pilot slots.
	PilotProfilesCount = 5

	// TopScoresSize is the decoded size of the "TopScores" entry.
	TopScoresSize = ScoreRecordSize * TopScoresCount
	// PilotProfilesSize is the decoded size of the "PilotsProfiles" entry.
	PilotProfilesSize = ProfileRecordSize * PilotProfilesCount
)

// Name is a fixed-width, zero-padded pilot name.
type Name [NameSize]byte

// NewName truncates s to NameSize bytes.
func NewName(s string) Name {
	var n Name
	copy(n[:], s)

	return n
}

// String returns the name without its zero padding.
func (n Name) String() string {
	if i := bytes.IndexByte(n[:], 0); i >= 0 {
		return string(n[:i])
	}

	return string(n[:])
}

// ScoreRecord is one row of the high-score table.
//
// Layout (little-endian):
//
//	offset 0   Name  [16]byte
//	offset 16  Score uint32
//	offset 20  Wave  uint16
//	offset 22  Ship  uint16
type ScoreRecord struct {
	Name  Name
	Score uint32
	Wave  uint16
	Ship  uint16
}

// AppendBinary appends the serialized record to b.
func (r ScoreRecord) AppendBinary(b []byte) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	b = append(b, r.Name[:]...)
	b = engine.AppendUint32(b, r.Score)
	b = engine.AppendUint16(b, r.Wave)
	b = engine.AppendUint16(b, r.Ship)

	return b, nil
}

// UnmarshalBinary parses exactly ScoreRecordSize bytes.
func (r *ScoreRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ScoreRecordSize {
		return fmt.Errorf("%w: score record needs %d bytes, got %d", errs.ErrInvalidRecordSize, ScoreRecordSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	copy(r.Name[:], data[:NameSize])
	r.Score = engine.Uint32(data[16:20])
	r.Wave = engine.Uint16(data[20:22])
	r.Ship = engine.Uint16(data[22:24])

	return nil
}

// ProfileRecord is one pilot slot.
//
// Layout (little-endian):
//
//	offset 0   Name       [16]byte
//	offset 16  Ship       uint8
//	offset 17  Difficulty uint8
//	offset 18  Medals     uint16
//	offset 20  Credits    uint32
//	offset 24  Kills      uint32
//	offset 28  PlayTime   uint32, seconds
type ProfileRecord struct {
	Name       Name
	Ship       uint8
	Difficulty uint8
	Medals     uint16
	Credits    uint32
	Kills      uint32
	PlayTime   uint32
}

// AppendBinary appends the serialized record to b.
func (r ProfileRecord) AppendBinary(b []byte) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	b = append(b, r.Name[:]...)
	b = append(b, r.Ship, r.Difficulty)
	b = engine.AppendUint16(b, r.Medals)
	b = engine.AppendUint32(b, r.Credits)
	b = engine.AppendUint32(b, r.Kills)
	b = engine.AppendUint32(b, r.PlayTime)

	return b, nil
}

// UnmarshalBinary parses exactly ProfileRecordSize bytes.
func (r *ProfileRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ProfileRecordSize {
		return fmt.Errorf("%w: profile record needs %d bytes, got %d", errs.ErrInvalidRecordSize, ProfileRecordSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	copy(r.Name[:], data[:NameSize])
	r.Ship = data[16]
	r.Difficulty = data[17]
	r.Medals = engine.Uint16(data[18:20])
	r.Credits = engine.Uint32(data[20:24])
	r.Kills = engine.Uint32(data[24:28])
	r.PlayTime = engine.Uint32(data[28:32])

	return nil
}

// IsEmpty reports whether the slot has never been used.
func (r ProfileRecord) IsEmpty() bool {
	return r == ProfileRecord{}
}

// TopScores is the high-score table, best score first.
type TopScores [TopScoresCount]ScoreRecord

// DefaultTopScores returns the table shown before anything has been saved.
func DefaultTopScores() TopScores {
	var t TopScores
	for i := range t {
		t[i] = ScoreRecord{
			Name:  NewName(fmt.Sprintf("ACE %02d", i+1)),
			Score: uint32(10000 - i*1000),
			Wave:  uint16(TopScoresCount - i),
		}
	}

	return t
}

// MarshalBinary serializes the whole table.
func (t *TopScores) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, TopScoresSize)
	for i := range t {
		b, _ = t[i].AppendBinary(b)
	}

	return b, nil
}

// UnmarshalBinary replaces the whole table. data must be exactly TopScoresSize bytes.
func (t *TopScores) UnmarshalBinary(data []byte) error {
	if len(data) != TopScoresSize {
		return fmt.Errorf("%w: score table needs %d bytes, got %d", errs.ErrInvalidRecordSize, TopScoresSize, len(data))
	}

	var next TopScores
	for i := range next {
		off := i * ScoreRecordSize
		if err := next[i].UnmarshalBinary(data[off : off+ScoreRecordSize]); err != nil {
			return err
		}
	}
	*t = next

	return nil
}

// Qualifies reports whether score would enter the table.
func (t *TopScores) Qualifies(score uint32) bool {
	return score > t[TopScoresCount-1].Score
}

// Insert places rec in score order, dropping the last entry.
// Ties keep the existing entry first. It returns the position of rec, or -1
// if the score does not qualify.
func (t *TopScores) Insert(rec ScoreRecord) int {
	if !t.Qualifies(rec.Score) {
		return -1
	}

	pos := TopScoresCount - 1
	for pos > 0 && t[pos-1].Score < rec.Score {
		pos--
	}

	copy(t[pos+1:], t[pos:TopScoresCount-1])
	t[pos] = rec

	return pos
}

// PilotProfiles holds every pilot slot.
type PilotProfiles [PilotProfilesCount]ProfileRecord

// DefaultPilotProfiles returns empty slots.
func DefaultPilotProfiles() PilotProfiles {
	return PilotProfiles{}
}

// MarshalBinary serializes every slot.
func (p *PilotProfiles) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, PilotProfilesSize)
	for i := range p {
		b, _ = p[i].AppendBinary(b)
	}

	return b, nil
}

// UnmarshalBinary replaces every slot. data must be exactly PilotProfilesSize bytes.
func (p *PilotProfiles) UnmarshalBinary(data []byte) error {
	if len(data) != PilotProfilesSize {
		return fmt.Errorf("%w: pilot profiles need %d bytes, got %d", errs.ErrInvalidRecordSize, PilotProfilesSize, len(data))
	}

	var next PilotProfiles
	for i := range next {
		off := i * ProfileRecordSize
		if err := next[i].UnmarshalBinary(data[off : off+ProfileRecordSize]); err != nil {
			return err
		}
	}
	*p = next

	return nil
}

// FreeSlot returns the index of the first empty slot, or -1 when all are used.
func (p *PilotProfiles) FreeSlot() int {
	for i := range p {
		if p[i].IsEmpty() {
			return i
		}
	}

	return -1
}
