// Package loader decodes texture images into RGBA staging data for GPU upload.
// Decoding runs on a small worker pool so start-up can overlap it with window and
// pipeline creation.
package loader

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	flipVertical bool
	workers      int
	queueSize    int
	idleTimeout  time.Duration

	pool   worker.DynamicWorkerPool
	nextID atomic.Int64

	cache map[string]common.TextureStagingData
}

// Loader decodes and caches textures.
type Loader interface {
	// LoadTexture reads and decodes the image at path. Results are cached by cleaned path.
	//
	// Parameters:
	//   - path: the image file path
	//
	// Returns:
	//   - common.TextureStagingData: RGBA8 pixels, rows bottom-up when flipping is enabled
	//   - error: wraps common.ErrAssetLoad if the file is missing or cannot be decoded
	LoadTexture(path string) (common.TextureStagingData, error)

	// LoadTextureAsync queues LoadTexture on the worker pool.
	//
	// Parameters:
	//   - path: the image file path
	//
	// Returns:
	//   - *PendingTexture: a handle to join the result
	LoadTextureAsync(path string) *PendingTexture

	// DecodeTexture decodes an image stream without touching the cache.
	//
	// Parameters:
	//   - name: a label for errors and the staging data
	//   - r: the encoded image
	//
	// Returns:
	//   - common.TextureStagingData: the decoded pixels
	//   - error: wraps common.ErrAssetLoad on decode failure
	DecodeTexture(name string, r io.Reader) (common.TextureStagingData, error)
}

// PendingTexture is the result of an asynchronous load.
type PendingTexture struct {
	done chan struct{}
	data common.TextureStagingData
	err  error
}

// Wait blocks until the load finishes.
//
// Returns:
//   - common.TextureStagingData: the decoded texture
//   - error: the load error, if any
func (p *PendingTexture) Wait() (common.TextureStagingData, error) {
	<-p.done
	return p.data, p.err
}

var _ Loader = &loader{}

// NewLoader creates a Loader that flips images vertically, matching OpenGL's
// bottom-left texture origin.
//
// Parameters:
//   - options: functional options to configure the loader
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		flipVertical: true,
		workers:      2,
		queueSize:    8,
		idleTimeout:  time.Second,
		cache:        make(map[string]common.TextureStagingData),
	}
	for _, option := range options {
		option(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, l.queueSize, l.idleTimeout)
	return l
}

func (l *loader) LoadTexture(path string) (common.TextureStagingData, error) {
	key := filepath.Clean(path)

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	raw, err := os.ReadFile(key)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("%w: read texture %q: %w", common.ErrAssetLoad, key, err)
	}

	name := strings.TrimSuffix(filepath.Base(key), filepath.Ext(key))
	data, err := l.DecodeTexture(name, bytes.NewReader(raw))
	if err != nil {
		return common.TextureStagingData{}, err
	}

	l.mu.Lock()
	l.cache[key] = data
	l.mu.Unlock()

	log.Printf("[Loader] decoded %s (%dx%d)", key, data.Width, data.Height)
	return data, nil
}

func (l *loader) LoadTextureAsync(path string) *PendingTexture {
	p := &PendingTexture{done: make(chan struct{})}
	l.pool.SubmitTask(worker.Task{
		ID: int(l.nextID.Add(1)),
		Do: func() (any, error) {
			defer close(p.done)
			p.data, p.err = l.LoadTexture(path)
			return nil, p.err
		},
	})
	return p
}

func (l *loader) DecodeTexture(name string, r io.Reader) (common.TextureStagingData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("%w: decode texture %q: %w", common.ErrAssetLoad, name, err)
	}

	var rgba *image.RGBA
	if l.flipVertical {
		rgba = transform.FlipV(img)
	} else {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	data := common.TextureStagingData{
		Name:   name,
		Pixels: packRGBA(rgba),
		Width:  uint32(rgba.Bounds().Dx()),
		Height: uint32(rgba.Bounds().Dy()),
	}
	if err := data.Validate(); err != nil {
		return common.TextureStagingData{}, fmt.Errorf("decode texture %q (%s): %w", name, format, err)
	}
	return data, nil
}

// packRGBA copies the image's pixels into a tightly packed width*height*4 slice.
func packRGBA(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	if img.Stride == rowLen && b.Min == (image.Point{}) {
		return img.Pix[:rowLen*b.Dy()]
	}
	out := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[start:start+rowLen]...)
	}
	return out
}
