package gamesave

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/arloliu/gamesave/errs"
	"github.com/arloliu/gamesave/internal/hash"
	"github.com/arloliu/gamesave/internal/options"
	"github.com/arloliu/gamesave/obfs"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// EntryTopScores names the document entry holding the score table.
	EntryTopScores = "TopScores"
	// EntryPilotProfiles names the document entry holding the pilot profiles.
	EntryPilotProfiles = "PilotsProfiles"

	// ChecksumAttribute is the entry attribute holding the hex xxHash64 of the raw record bytes.
	ChecksumAttribute = "checksum"
)

// EntryStatus describes where the value of a loaded entry came from.
type EntryStatus uint8

const (
	// StatusDefault means the entry was absent and defaults were used.
	StatusDefault EntryStatus = iota
	// StatusLoaded means the entry was decoded successfully.
	StatusLoaded
	// StatusRecovered means the entry was unreadable and defaults were used.
	StatusRecovered
	// StatusSkipped means safe mode skipped the entry and defaults were used.
	StatusSkipped
)

func (s EntryStatus) String() string {
	switch s {
	case StatusDefault:
		return "default"
	case StatusLoaded:
		return "loaded"
	case StatusRecovered:
		return "recovered"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// State is the complete persisted game state.
type State struct {
	Scores         TopScores
	Profiles       PilotProfiles
	ScoresStatus   EntryStatus
	ProfilesStatus EntryStatus
}

// DefaultState returns the state of a fresh installation.
func DefaultState() State {
	return State{
		Scores:   DefaultTopScores(),
		Profiles: DefaultPilotProfiles(),
	}
}

// Store reads and writes game state entries in a Document.
//
// Codec failures never surface as missing state: an unreadable entry is
// replaced by its defaults and reported through the logger and the error
// returned from Load. A Store is safe for concurrent use if its Document is.
type Store struct {
	doc Document
	cfg StoreConfig

	mu  sync.Mutex // serializes saves; enc's key source is not concurrency safe
	enc *obfs.Encoder

	cache *lru.Cache[uint64, []byte] // entry text checksum -> decoded bytes, nil when disabled
}

// NewStore creates a Store over doc.
func NewStore(doc Document, opts ...StoreOption) (*Store, error) {
	if doc == nil {
		return nil, errors.New("gamesave: nil document")
	}

	cfg := defaultStoreConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	enc, err := obfs.NewEncoder(cfg.encoder...)
	if err != nil {
		return nil, err
	}

	store := &Store{doc: doc, cfg: *cfg, enc: enc}
	if cfg.cacheSize > 0 {
		store.cache, err = lru.New[uint64, []byte](cfg.cacheSize)
		if err != nil {
			return nil, err
		}
	}

	return store, nil
}

// SaveScores replaces the score table entry.
func (s *Store) SaveScores(scores *TopScores) error {
	return s.saveEntry(EntryTopScores, scores)
}

// SaveProfiles replaces the pilot profile entry. In safe mode it does nothing.
func (s *Store) SaveProfiles(profiles *PilotProfiles) error {
	if s.cfg.safeMode {
		s.cfg.logger.Debug("safe mode, profiles not saved", "entry", EntryPilotProfiles)
		return nil
	}

	return s.saveEntry(EntryPilotProfiles, profiles)
}

// Save writes every entry of state.
func (s *Store) Save(state *State) error {
	if err := s.SaveScores(&state.Scores); err != nil {
		return err
	}

	return s.SaveProfiles(&state.Profiles)
}

// Load reads every entry.
//
// The returned State is always usable. Each entry that was present but could
// not be restored falls back to its defaults; the returned error joins the
// reasons, each prefixed with the entry name.
func (s *Store) Load() (State, error) {
	state := DefaultState()

	var loadErrs []error
	if err := s.loadScores(&state); err != nil {
		loadErrs = append(loadErrs, err)
	}
	if err := s.loadProfiles(&state); err != nil {
		loadErrs = append(loadErrs, err)
	}

	return state, errors.Join(loadErrs...)
}

func (s *Store) loadScores(state *State) error {
	var scores TopScores
	status, err := s.loadEntry(EntryTopScores, TopScoresSize, &scores)
	state.ScoresStatus = status
	if status == StatusLoaded {
		state.Scores = scores
	}

	return err
}

func (s *Store) loadProfiles(state *State) error {
	if s.cfg.safeMode {
		s.cfg.logger.Info("safe mode, using default profiles", "entry", EntryPilotProfiles)
		state.ProfilesStatus = StatusSkipped

		return nil
	}

	var profiles PilotProfiles
	status, err := s.loadEntry(EntryPilotProfiles, PilotProfilesSize, &profiles)
	state.ProfilesStatus = status
	if status == StatusLoaded {
		state.Profiles = profiles
	}

	return err
}

// loadEntry decodes the named entry into dst. dst is only meaningful when the
// returned status is StatusLoaded.
func (s *Store) loadEntry(name string, size int, dst encoding.BinaryUnmarshaler) (EntryStatus, error) {
	text, ok := s.doc.Content(name)
	if !ok {
		s.cfg.logger.Debug("entry absent, using defaults", "entry", name)
		return StatusDefault, nil
	}

	raw, err := s.decode(name, text, size)
	if err == nil {
		err = s.verifyChecksum(name, raw)
	}
	if err == nil {
		err = dst.UnmarshalBinary(raw)
	}
	if err != nil {
		s.cfg.logger.Warn("entry unreadable, using defaults", "entry", name, "error", err)
		return StatusRecovered, fmt.Errorf("%s: %w", name, err)
	}

	s.cfg.logger.Debug("entry loaded", "entry", name, "bytes", size, "text_len", len(text))

	return StatusLoaded, nil
}

// decode expands text, consulting the decode cache when enabled.
// Only successful decodes are cached.
func (s *Store) decode(name, text string, size int) ([]byte, error) {
	if s.cache == nil {
		return Decode(text, size)
	}

	key := hash.ChecksumString(name + "\x00" + text)
	if raw, ok := s.cache.Get(key); ok && len(raw) == size {
		s.cfg.logger.Trace("decode cache hit", "entry", name)
		return raw, nil
	}

	raw, err := Decode(text, size)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, raw)

	return raw, nil
}

func (s *Store) verifyChecksum(name string, raw []byte) error {
	if !s.cfg.checksum {
		return nil
	}

	stored, ok := s.doc.Attribute(name, ChecksumAttribute)
	if !ok {
		return nil
	}

	want, err := strconv.ParseUint(stored, 16, 64)
	if err != nil {
		return fmt.Errorf("%w: unparsable attribute %q", errs.ErrChecksumMismatch, stored)
	}

	if got := hash.Checksum(raw); got != want {
		return fmt.Errorf("%w: stored %016x, computed %016x", errs.ErrChecksumMismatch, want, got)
	}

	return nil
}

func (s *Store) saveEntry(name string, src encoding.BinaryMarshaler) error {
	raw, err := src.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	// content and checksum must come from the same save
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := encodeWith(s.enc, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	// written even when verification is off so a stale sum never outlives its content
	s.doc.SetContent(name, text)
	s.doc.SetAttribute(name, ChecksumAttribute, fmt.Sprintf("%016x", hash.Checksum(raw)))

	s.cfg.logger.Debug("entry saved", "entry", name, "bytes", len(raw), "text_len", len(text))

	return nil
}
