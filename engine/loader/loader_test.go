package loader

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/floatarts/common"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRowPNG encodes a 2x2 image whose top row is red and bottom row is blue.
func twoRowPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func firstPixel(data common.TextureStagingData) color.RGBA {
	p := data.Pixels
	return color.RGBA{p[0], p[1], p[2], p[3]}
}

func TestDecodeTextureFlip(t *testing.T) {
	cases := []struct {
		flip bool
		want color.RGBA
	}{
		{true, blue},
		{false, red},
	}
	for _, x := range cases {
		l := NewLoader(WithFlipVertical(x.flip))
		data, err := l.DecodeTexture("rows", bytes.NewReader(twoRowPNG(t)))
		if err != nil {
			t.Fatalf("DecodeTexture(flip=%t)\nhave %v\nwant nil", x.flip, err)
		}
		if data.Width != 2 || data.Height != 2 || len(data.Pixels) != 16 {
			t.Fatalf("DecodeTexture(flip=%t): size\nhave %dx%d, %d bytes\nwant 2x2, 16 bytes", x.flip, data.Width, data.Height, len(data.Pixels))
		}
		if p := firstPixel(data); p != x.want {
			t.Fatalf("DecodeTexture(flip=%t): first pixel\nhave %v\nwant %v", x.flip, p, x.want)
		}
	}
}

func TestDecodeTextureGarbage(t *testing.T) {
	l := NewLoader()
	_, err := l.DecodeTexture("junk", strings.NewReader("not an image"))
	if !errors.Is(err, common.ErrAssetLoad) {
		t.Fatalf("DecodeTexture(junk)\nhave %v\nwant %v", err, common.ErrAssetLoad)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	l := NewLoader()
	_, err := l.LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, common.ErrAssetLoad) {
		t.Fatalf("LoadTexture(missing)\nhave %v\nwant %v", err, common.ErrAssetLoad)
	}
}

func TestLoadTextureCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brick.png")
	if err := os.WriteFile(path, twoRowPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader()
	first, err := l.LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture()\nhave %v\nwant nil", err)
	}
	if first.Name != "brick" {
		t.Fatalf("LoadTexture(): Name\nhave %q\nwant \"brick\"", first.Name)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := l.LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture() after remove\nhave %v\nwant cached result", err)
	}
	if !bytes.Equal(first.Pixels, second.Pixels) {
		t.Fatal("LoadTexture() after remove: Pixels differ from cached result")
	}
}

func TestLoadTextureAsync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "async.png")
	if err := os.WriteFile(path, twoRowPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(WithWorkers(1, 2))
	good := l.LoadTextureAsync(path)
	bad := l.LoadTextureAsync(filepath.Join(t.TempDir(), "nope.png"))

	data, err := good.Wait()
	if err != nil {
		t.Fatalf("LoadTextureAsync().Wait()\nhave %v\nwant nil", err)
	}
	if p := firstPixel(data); p != blue {
		t.Fatalf("LoadTextureAsync(): first pixel\nhave %v\nwant %v", p, blue)
	}
	if _, err := bad.Wait(); !errors.Is(err, common.ErrAssetLoad) {
		t.Fatalf("LoadTextureAsync(missing).Wait()\nhave %v\nwant %v", err, common.ErrAssetLoad)
	}
}
