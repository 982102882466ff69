package chebtree

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/internal/testutil"
)

func BenchmarkBuild(b *testing.B) {
	for _, order := range []int{8, 16, 32} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Build(math.J0, domain.Domain{Lower: 0, Upper: 30}, WithOrder(order))
			}
		})
	}
}

func BenchmarkEvalBatch(b *testing.B) {
	tree, err := Build(math.J0, domain.Domain{Lower: 0, Upper: 30})
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range []int{1024, 16384} {
		in := testutil.Linspace(0, 30, size)
		out := make([]float64, size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tree.EvalBatch(in, out)
			}
		})
	}
}
