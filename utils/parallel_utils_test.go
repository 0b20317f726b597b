package utils

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Test PartitionMap
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Test inverted bucket probe
		for maxIndex := 10; maxIndex < 200; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			for k := 0; k < maxIndex; k++ {
				bn, min, max := pm.GetBucket(k)
				mmin, mmax := pm.GetBucketRange(bn)
				assert.True(t, k >= min && k < max && min == mmin && max == mmax)
			}
		}
	}
	{ // Parallel degree below one is treated as sequential
		pm := NewPartitionMap(0, 10)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [2]int{0, 10}, pm.Partitions[0])
	}
}

func TestRunPartitioned(t *testing.T) {
	for _, np := range []int{1, 3, 8} {
		var (
			pm    = NewPartitionMap(np, 100)
			visit = make([]int32, 100)
		)
		err := pm.RunPartitioned(context.Background(), func(ctx context.Context, bn, kMin, kMax int) error {
			for k := kMin; k < kMax; k++ {
				atomic.AddInt32(&visit[k], 1)
			}
			return nil
		})
		assert.NoError(t, err)
		for k := range visit {
			assert.Equal(t, int32(1), visit[k])
		}
	}
	{ // The first error is returned
		pm := NewPartitionMap(4, 8)
		err := pm.RunPartitioned(context.Background(), func(ctx context.Context, bn, kMin, kMax int) error {
			if bn == 2 {
				return fmt.Errorf("bucket %d failed", bn)
			}
			return nil
		})
		assert.EqualError(t, err, "bucket 2 failed")
	}
}
