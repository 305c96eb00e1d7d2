package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImage_Fit(t *testing.T) {
	assert := assert.New(t)

	im := NewImage(testImage(400, 200))
	assert.Equal(image.Rect(0, 0, 400, 200), im.Bounds())

	fit := im.Fit(image.Pt(100, 100))
	assert.Equal(image.Rect(0, 0, 100, 50), fit.Bounds())

	// Smaller images are never scaled up.
	fit = im.Fit(image.Pt(1000, 1000))
	assert.Equal(image.Rect(0, 0, 400, 200), fit.Bounds())
}

func TestImage_FaceOutlines(t *testing.T) {
	assert := assert.New(t)

	src := testImage(200, 200)
	im := NewImage(src)
	im.faces = []image.Rectangle{image.Rect(20, 20, 100, 100)}

	fit := im.Fit(image.Pt(100, 100))
	assert.Equal(faceColor, fit.NRGBAAt(10, 30))
	assert.Equal(faceColor, fit.NRGBAAt(30, 10))
	assert.NotEqual(faceColor, fit.NRGBAAt(30, 30))

	// Outlining a full size copy leaves the source untouched.
	full := im.Fit(image.Pt(500, 500))
	assert.Equal(faceColor, full.NRGBAAt(20, 50))
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, src.NRGBAAt(20, 50))
}

func TestImage_StrokeRectIsClipped(t *testing.T) {
	img := testImage(10, 10)
	strokeRect(img, image.Rect(-5, -5, 5, 5), faceColor, 1)
	assert.Equal(t, faceColor, img.NRGBAAt(0, 3))
	assert.Equal(t, faceColor, img.NRGBAAt(4, 4))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.NRGBAAt(2, 2))
}

func TestImage_Grayscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{A: 0xff})

	gray := rgbToGrayscale(img)
	assert.Len(t, gray, 2)
	assert.InDelta(t, 255, int(gray[0]), 1)
	assert.Equal(t, uint8(0), gray[1])
}

func TestImage_LoadFromFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "pane.png")
	assert.NoError(os.WriteFile(path, encodePNG(t, testImage(30, 20)), 0o644))

	im, err := LoadImage(path)
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 30, 20), im.Bounds())
	assert.NoError(im.Close())
	_, err = os.Stat(path)
	assert.NoError(err, "local files are left alone")

	txt := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(os.WriteFile(txt, []byte("plain text"), 0o644))
	_, err = LoadImage(txt)
	assert.Error(err)
}

func TestImage_LoadFromURL(t *testing.T) {
	assert := assert.New(t)

	data := encodePNG(t, testImage(8, 8))
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer ts.Close()

	im, err := LoadImage(ts.URL + "/img.png")
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 8, 8), im.Bounds())

	temp := im.temp
	assert.NotEmpty(temp)
	assert.NoError(im.Close())
	_, err = os.Stat(temp)
	assert.True(os.IsNotExist(err))
}

func TestImage_DetectFacesErrors(t *testing.T) {
	im := NewImage(testImage(10, 10))

	_, err := im.DetectFaces(nil, 0, 5)
	assert.Error(t, err)
	assert.Empty(t, im.Faces())
}
