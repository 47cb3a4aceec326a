package rankcode_test

import (
	"fmt"

	"github.com/arloliu/gamesave/rankcode"
)

func Example() {
	blob, err := rankcode.Encode([]byte("AAAA"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("blob: % x\n", blob)

	out, err := rankcode.Decode(blob, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("decoded: %s\n", out)

	// Output:
	// blob: 04 00 00 00 00 41 00
	// decoded: AAAA
}

func ExampleInspect() {
	blob, _ := rankcode.Encode([]byte("abracadabra"))

	header, err := rankcode.Inspect(blob)
	if err != nil {
		panic(err)
	}
	fmt.Printf("bits=%d tabCount=%d table=%q\n", header.BitCount, header.TabCount(), header.RankTable)

	// Output:
	// bits=27 tabCount=5 table="abrcd"
}
