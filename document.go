package gamesave

import (
	"slices"
	"sync"
)

// Document is the structured text file saves are stored in.
//
// Entries are addressed by name. Each entry has text content and string
// attributes. Reading and writing the file itself is the implementation's concern.
type Document interface {
	// Content returns the text content of the named entry.
	Content(name string) (string, bool)
	// SetContent replaces the text content of the named entry, creating it if needed.
	SetContent(name, value string)
	// Attribute returns an attribute of the named entry.
	Attribute(name, key string) (string, bool)
	// SetAttribute sets an attribute of the named entry, creating the entry if needed.
	SetAttribute(name, key, value string)
}

type memoryEntry struct {
	content    string
	hasContent bool
	attrs      map[string]string
}

// MemoryDocument is an in-memory Document. It is safe for concurrent use.
type MemoryDocument struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

var _ Document = (*MemoryDocument)(nil)

// NewMemoryDocument creates an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{entries: make(map[string]*memoryEntry)}
}

// Content returns the text content of the named entry.
func (d *MemoryDocument) Content(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[name]
	if !ok || !e.hasContent {
		return "", false
	}

	return e.content, true
}

// SetContent replaces the text content of the named entry, creating it if needed.
func (d *MemoryDocument) SetContent(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e := d.entry(name)
	e.content = value
	e.hasContent = true
}

// Attribute returns an attribute of the named entry.
func (d *MemoryDocument) Attribute(name, key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[name]
	if !ok {
		return "", false
	}
	v, ok := e.attrs[key]

	return v, ok
}

// SetAttribute sets an attribute of the named entry, creating the entry if needed.
func (d *MemoryDocument) SetAttribute(name, key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entry(name).attrs[key] = value
}

// Names returns the entry names in sorted order.
func (d *MemoryDocument) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// entry returns the named entry, creating it. Callers hold the write lock.
func (d *MemoryDocument) entry(name string) *memoryEntry {
	e, ok := d.entries[name]
	if !ok {
		e = &memoryEntry{attrs: make(map[string]string)}
		d.entries[name] = e
	}

	return e
}
