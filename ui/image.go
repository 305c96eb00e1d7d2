package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"gioui.org/op/paint"
	"gioui.org/widget"
	"github.com/disintegration/imaging"
	"github.com/esimov/splitview/utils"
	pigo "github.com/esimov/pigo/core"
	_ "golang.org/x/image/bmp"
)

// faceColor is the stroke color of the detected face outlines.
var faceColor = color.NRGBA{R: 0xff, G: 0x3c, B: 0x3c, A: 0xff}

// Image is a pane content showing a picture scaled to fit the pane.
// Faces found by DetectFaces are outlined on top of it.
type Image struct {
	src   *image.NRGBA
	faces []image.Rectangle

	// temp is the downloaded copy of a remote image, removed on Close.
	temp string

	size image.Point
	op   paint.ImageOp
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	return &Image{src: imgToNRGBA(img)}
}

// LoadImage reads an image from a local path or an http(s) URL.
func LoadImage(path string) (*Image, error) {
	var temp string
	if utils.IsValidUrl(path) {
		f, err := utils.DownloadImage(path)
		if err != nil {
			return nil, err
		}
		f.Close()
		temp = f.Name()
		path = temp
	} else if !utils.IsImageFile(path) {
		return nil, fmt.Errorf("unsupported image file: %s", path)
	}

	img, err := decodeImg(path)
	if err != nil {
		if temp != "" {
			os.Remove(temp)
		}
		return nil, err
	}
	im := NewImage(img)
	im.temp = temp
	return im, nil
}

// decodeImg decodes an image file to type image.Image
func decodeImg(src string) (image.Image, error) {
	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("%s is not an image file", src)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the image file: %w", err)
	}
	return img, nil
}

// Bounds returns the size of the source image.
func (im *Image) Bounds() image.Rectangle { return im.src.Bounds() }

// Faces returns the face regions found by DetectFaces, in source pixels.
func (im *Image) Faces() []image.Rectangle { return im.faces }

// DetectFaces runs the pigo classifier over the image and keeps the
// regions scoring above minQuality. It returns the number of faces found.
func (im *Image) DetectFaces(cascade []byte, angle float64, minQuality float32) (int, error) {
	if len(cascade) == 0 {
		return 0, errors.New("empty cascade file")
	}
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return 0, fmt.Errorf("error unpacking the cascade file: %w", err)
	}

	dx, dy := im.src.Bounds().Dx(), im.src.Bounds().Dy()
	params := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     utils.Max(dx, dy),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,

		ImageParams: pigo.ImageParams{
			Pixels: rgbToGrayscale(im.src),
			Rows:   dy,
			Cols:   dx,
			Dim:    dx,
		},
	}

	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := classifier.RunCascade(params, angle)
	dets = classifier.ClusterDetections(dets, 0.2)

	im.faces = im.faces[:0]
	for _, d := range dets {
		if d.Q < minQuality {
			continue
		}
		half := d.Scale / 2
		im.faces = append(im.faces, image.Rect(d.Col-half, d.Row-half, d.Col+half, d.Row+half))
	}
	im.size = image.Point{}
	return len(im.faces), nil
}

// Fit returns the image scaled down to fit area, keeping its aspect
// ratio, with the face outlines drawn over it.
func (im *Image) Fit(area image.Point) *image.NRGBA {
	b := im.src.Bounds()
	dst := im.src
	if b.Dx() > area.X || b.Dy() > area.Y {
		dst = imaging.Fit(im.src, utils.Max(area.X, 1), utils.Max(area.Y, 1), imaging.Lanczos)
	}
	if len(im.faces) == 0 {
		return dst
	}
	if dst == im.src {
		dst = imaging.Clone(im.src)
	}

	sx := float64(dst.Bounds().Dx()) / float64(b.Dx())
	sy := float64(dst.Bounds().Dy()) / float64(b.Dy())
	for _, f := range im.faces {
		r := image.Rect(
			int(float64(f.Min.X)*sx), int(float64(f.Min.Y)*sy),
			int(float64(f.Max.X)*sx), int(float64(f.Max.Y)*sy),
		)
		strokeRect(dst, r, faceColor, 2)
	}
	return dst
}

// Layout draws the image centered in the available space. The scaled
// copy is cached until the space changes.
func (im *Image) Layout(gtx C) D {
	area := gtx.Constraints.Max
	if area.X <= 0 || area.Y <= 0 {
		return D{}
	}
	if area != im.size {
		im.size = area
		im.op = paint.NewImageOp(im.Fit(area))
	}
	scale := float32(1)
	if gtx.Metric.PxPerDp > 0 {
		scale = 1 / gtx.Metric.PxPerDp
	}
	return widget.Image{
		Src:   im.op,
		Fit:   widget.Contain,
		Scale: scale,
	}.Layout(gtx)
}

// Close removes the temporary file of a downloaded image.
func (im *Image) Close() error {
	if im.temp == "" {
		return nil
	}
	err := os.Remove(im.temp)
	im.temp = ""
	return err
}

var _ io.Closer = (*Image)(nil)

// strokeRect draws the outline of r on dst, w pixels wide.
func strokeRect(dst draw.Image, r image.Rectangle, col color.Color, w int) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w),
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y),
		image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		if src, ok := img.(*image.NRGBA); ok {
			return src
		}
	}
	dst := image.NewNRGBA(b.Sub(b.Min))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// rgbToGrayscale converts an image to grayscale mode and
// returns the pixel values as an one dimensional array.
func rgbToGrayscale(src *image.NRGBA) []uint8 {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	gray := make([]uint8, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			gray[y*width+x] = uint8(
				(0.299*float64(r) +
					0.587*float64(g) +
					0.114*float64(b)) / 256,
			)
		}
	}
	return gray
}
