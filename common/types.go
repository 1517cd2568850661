// Package common contains small shared types and helpers used throughout the viewer. They are plain structs and
// functions rather than interface-wrapped types.
package common

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
// Rows are stored bottom-up when produced by the loader with flipping enabled, which is
// the order OpenGL expects for texture coordinate (0, 0) at the lower-left corner.
type TextureStagingData struct {
	// Name identifies the texture in logs and GPU labels, usually the source file path.
	Name string
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// Validate checks that the pixel buffer matches the declared dimensions.
//
// Returns:
//   - error: an ErrAssetLoad-wrapped error when the staging data is inconsistent
func (t TextureStagingData) Validate() error {
	if t.Width == 0 || t.Height == 0 {
		return fmt.Errorf("texture %q has zero size %dx%d: %w", t.Name, t.Width, t.Height, ErrAssetLoad)
	}
	if want := int(t.Width) * int(t.Height) * 4; len(t.Pixels) != want {
		return fmt.Errorf("texture %q has %d bytes, want %d: %w", t.Name, len(t.Pixels), want, ErrAssetLoad)
	}
	return nil
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero fields fall back to linear filtering and repeat addressing in the WebGPU backend.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}
