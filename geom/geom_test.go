package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestGeom_Rect(t *testing.T) {
	assert := assert.New(t)

	r := R(10, 20, 100, 50)
	assert.Equal(Pt(110, 70), r.Max())

	start, extent := r.Span(AxisX)
	assert.Equal(float32(10), start)
	assert.Equal(float32(100), extent)

	start, extent = r.Span(AxisY)
	assert.Equal(float32(20), start)
	assert.Equal(float32(50), extent)

	assert.Equal(R(10, 30, 100, 5), r.Slice(AxisY, 30, 5))
	assert.Equal(R(40, 20, 5, 50), r.Slice(AxisX, 40, 5))

	assert.True(r.Contains(Pt(10, 20)))
	assert.True(r.Contains(Pt(110, 70)))
	assert.False(r.Contains(Pt(111, 70)))
	assert.Equal(AxisY, AxisX.Cross())
	assert.Equal(AxisX, AxisY.Cross())
}

func TestGeom_Ratios(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(float32(1), SafeSum(nil))
	assert.Equal(float32(1), SafeSum([]float32{0, 0}))
	assert.Equal(float32(0.5), SafeSum([]float32{0.25, 0.25}))
	assert.Nil(Equal(0))
	assert.Equal([]float32{0.5, 0.5}, Equal(2))
	assert.Equal([]float32{0.25, 0.75}, Normalize([]float32{1, 3}))
	assert.Equal([]float32{0.5, 0.5}, Normalize([]float32{0, 0}))
	assert.Equal(float32(0), Clamp01(-2))
	assert.Equal(float32(1), Clamp01(2))
}

func TestGeom_PartitionTilesTheRect(t *testing.T) {
	r := R(0, 0, 800, 600)
	got := Partition(r, AxisY, []float32{2, 1, 1})
	want := []Rect{
		R(0, 0, 800, 300),
		R(0, 300, 800, 150),
		R(0, 450, 800, 150),
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Fatalf("partition mismatch (-want +got):\n%s", diff)
	}

	got = Partition(R(100, 50, 300, 10), AxisX, []float32{0, 0, 0})
	var total float32
	for i, rect := range got {
		assert.InDelta(t, 100, rect.Size.X, 1e-3)
		assert.Equal(t, float32(10), rect.Size.Y)
		if i > 0 {
			assert.InDelta(t, got[i-1].Max().X, rect.Pos.X, 1e-3)
		}
		total += rect.Size.X
	}
	assert.InDelta(t, 300, total, 1e-3)
}

func TestGeom_Boundaries(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Boundaries(R(0, 0, 100, 100), AxisX, []float32{1}))
	got := Boundaries(R(10, 0, 100, 100), AxisX, []float32{0.25, 0.25, 0.5})
	assert.Len(got, 2)
	assert.InDelta(35, got[0], 1e-4)
	assert.InDelta(60, got[1], 1e-4)
}
