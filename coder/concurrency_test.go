package coder_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/abi-codec/coder"
	"github.com/wippyai/abi-codec/soltype"
)

func TestConcurrentEncodeDecode(t *testing.T) {
	const workers = 8
	const rounds = 200

	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				v := sampleTuple(uint64(w*rounds+i), i%2 == 0, []byte{byte(w), byte(i)},
					fmt.Sprintf("worker-%d-%d", w, i), []uint8{byte(w), byte(i)})
				data := coder.EncodeParams(v)

				dst := soltype.MustParse(sampleType).NewTuple()
				if err := coder.DecodeParams(data, dst); err != nil {
					errs <- err
					return
				}
				if dst.String() != v.String() {
					errs <- fmt.Errorf("worker %d round %d: got %s, want %s", w, i, dst, v)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
