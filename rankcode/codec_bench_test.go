package rankcode

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func generateBenchmarkData(size int, alphabet int) []byte {
	rng := rand.New(rand.NewPCG(uint64(size), uint64(alphabet)))
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rng.IntN(alphabet))
	}

	return data
}

func BenchmarkEncode(b *testing.B) {
	for _, size := range []int{300, 4096, 65536} {
		for _, alphabet := range []int{4, 64, 256} {
			data := generateBenchmarkData(size, alphabet)
			b.Run(fmt.Sprintf("size=%d/alphabet=%d", size, alphabet), func(b *testing.B) {
				enc := NewEncoder()
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					if _, err := enc.Encode(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, size := range []int{300, 4096, 65536} {
		data := generateBenchmarkData(size, 64)
		blob, err := Encode(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("discovery/size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for b.Loop() {
				if _, err := Decode(blob, 0); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("known/size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for b.Loop() {
				if _, err := Decode(blob, size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
