// SPDX-License-Identifier: MIT

package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/pq"
)

// BenchmarkQueue_EnqueueDequeue measures a full fill and drain of 1024 elements.
func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	const n = 1024
	rng := rand.New(rand.NewSource(42))
	prio := make([]float64, n)
	elems := make([]*pq.Element[int], n)
	for i := range prio {
		prio[i] = rng.Float64()
		elems[i] = pq.NewElement(i)
	}
	q, _ := pq.New[int](n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, e := range elems {
			_ = q.Enqueue(e, prio[j])
		}
		for q.Len() > 0 {
			_, _ = q.Dequeue()
		}
	}
}
