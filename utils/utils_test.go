package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(float32(-0.5), Min(float32(0.25), -0.5))
	assert.Equal(2, Max(1, 2))
	assert.Equal(float32(0.5), Abs(float32(-0.5)))
	assert.Equal(float32(0.05), Clamp(float32(-1), 0.05, 1))
	assert.Equal(float32(1), Clamp(float32(3), 0.05, 1))
	assert.Equal(float32(0.3), Clamp(float32(0.3), 0.05, 1))
}

func TestUtils_ParseColor(t *testing.T) {
	testCases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#646464", want: color.NRGBA{R: 100, G: 100, B: 100, A: 255}},
		{in: "#64646480", want: color.NRGBA{R: 100, G: 100, B: 100, A: 128}},
		{in: "#fff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "DimGray", want: color.NRGBA{R: 105, G: 105, B: 105, A: 255}},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "no-such-color", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUtils_ColorHexRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	got, err := HexToRGBA(ColorHex(c))
	assert.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestUtils_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 3.00s", FormatTime(2*time.Minute+3*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_IsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("a/b/c.PNG"))
	assert.True(t, IsImageFile("c.jpeg"))
	assert.False(t, IsImageFile("c.txt"))
}
