package gamesave

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDocument(t *testing.T) {
	doc := NewMemoryDocument()

	_, ok := doc.Content("TopScores")
	require.False(t, ok)
	_, ok = doc.Attribute("TopScores", "checksum")
	require.False(t, ok)

	doc.SetAttribute("Options", "volume", "7")
	_, ok = doc.Content("Options")
	require.False(t, ok, "attribute-only entry has no content")

	v, ok := doc.Attribute("Options", "volume")
	require.True(t, ok)
	require.Equal(t, "7", v)

	doc.SetContent("TopScores", "abc")
	doc.SetContent("TopScores", "")
	content, ok := doc.Content("TopScores")
	require.True(t, ok, "empty content is still content")
	require.Empty(t, content)

	require.Equal(t, []string{"Options", "TopScores"}, doc.Names())
}

func TestMemoryDocument_Concurrent(t *testing.T) {
	doc := NewMemoryDocument()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("entry%d", i%4)
			doc.SetContent(name, "x")
			doc.SetAttribute(name, "k", "v")
			_, _ = doc.Content(name)
			_, _ = doc.Attribute(name, "k")
		}()
	}
	wg.Wait()

	require.Len(t, doc.Names(), 4)
}
