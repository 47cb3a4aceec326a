package gamesave_test

import (
	"fmt"

	"github.com/arloliu/gamesave"
	"github.com/arloliu/gamesave/obfs"
)

func Example() {
	text, err := gamesave.Encode([]byte("AAAA"), obfs.WithKeySource(obfs.NewKeySequence('a')))
	if err != nil {
		panic(err)
	}
	fmt.Println(text)

	raw, err := gamesave.Decode(text, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(raw))

	// Output:
	// aaaaaaakbjhjhjhjhdcjh
	// AAAA
}

func ExampleStore() {
	doc := gamesave.NewMemoryDocument()
	store, err := gamesave.NewStore(doc, gamesave.WithEncoderOptions(obfs.WithSeed(1)))
	if err != nil {
		panic(err)
	}

	scores := gamesave.DefaultTopScores()
	scores.Insert(gamesave.ScoreRecord{Name: gamesave.NewName("MAVERICK"), Score: 12500})
	if err := store.SaveScores(&scores); err != nil {
		panic(err)
	}

	state, err := store.Load()
	if err != nil {
		panic(err)
	}
	fmt.Println(state.ScoresStatus, state.Scores[0].Name, state.Scores[0].Score)
	fmt.Println(state.ProfilesStatus, state.Profiles.FreeSlot())

	// Output:
	// loaded MAVERICK 12500
	// default 0
}
