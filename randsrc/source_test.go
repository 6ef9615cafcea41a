package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkerSource_DeterministicPerSeed(t *testing.T) {
	a := NewWorkerSource(42, 3)
	b := NewWorkerSource(42, 3)
	for i := 0; i < 100; i++ {
		va := a.UniformInt(1000)
		vb := b.UniformInt(1000)
		assert.Equal(t, va, vb)
	}
}

func TestNewWorkerSource_DistinctWorkersDiverge(t *testing.T) {
	a := NewWorkerSource(42, 0)
	b := NewWorkerSource(42, 1)
	same := true
	for i := 0; i < 20; i++ {
		if a.UniformInt(1 << 30) != b.UniformInt(1<<30) {
			same = false
			break
		}
	}
	assert.False(t, same, "worker streams with different ids should diverge")
}

func TestNewCentralSource_IndependentOfWorkers(t *testing.T) {
	central := NewCentralSource(7)
	worker := NewWorkerSource(7, 0)
	diverged := false
	for i := 0; i < 20; i++ {
		if central.UniformInt(1<<30) != worker.UniformInt(1<<30) {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestShuffleInts_PreservesElements(t *testing.T) {
	s := NewWorkerSource(1, 0)
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	orig := append([]int(nil), a...)
	s.ShuffleInts(a)

	counts := make(map[int]int)
	for _, v := range a {
		counts[v]++
	}
	for _, v := range orig {
		counts[v]--
	}
	for _, c := range counts {
		assert.Zero(t, c)
	}
}

func TestUniformInt_WithinBounds(t *testing.T) {
	s := NewWorkerSource(99, 5)
	for i := 0; i < 1000; i++ {
		v := s.UniformInt(17)
		assert.True(t, v >= 0 && v < 17)
	}
}
