package boxcar

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, size := range []int{5, 20, 255} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			f, err := New(size)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}
			_ = x
		})
	}
}
