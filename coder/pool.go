package coder

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxWords  = 4096 // 128 KiB of encoded output
	poolInitWords = 16
)

// word buffer pool for encoders
var wordPool = sync.Pool{
	New: func() any {
		buf := make([]Word, 0, poolInitWords)
		return &buf
	},
}

// getWords returns an empty buffer with room for at least n words.
func getWords(n int) *[]Word {
	if n > poolMaxWords {
		buf := make([]Word, 0, n)
		return &buf
	}
	buf := wordPool.Get().(*[]Word)
	if cap(*buf) < n {
		*buf = make([]Word, 0, n)
	}
	return buf
}

func putWords(buf *[]Word) {
	if buf == nil || cap(*buf) > poolMaxWords {
		return // reject oversized
	}
	clear((*buf)[:cap(*buf)])
	*buf = (*buf)[:0]
	wordPool.Put(buf)
}
