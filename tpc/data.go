// Package tpc reads the TPC texture container, a sibling of GFF in the
// same resource set. It shares no machinery with the GFF codec: a fixed
// header at offset 0, pixel data from offset 0x80 walking a per-layer
// mipmap chain, and an optional trailing TXI text footer.
package tpc

type (
	Texture struct {
		AlphaTest   float32 `json:"alpha_test"`
		Width       int     `json:"width"`
		Height      int     `json:"height"`
		Format      Format  `json:"format"`
		Compressed  bool    `json:"compressed"`
		CubeMap     bool    `json:"cube_map"`
		MipmapCount int     `json:"mipmap_count"`
		Layers      []Layer `json:"layers"`
		TXI         string  `json:"txi,omitempty"`
	}
	Layer struct {
		Mipmaps []Mipmap `json:"mipmaps"`
	}
	Mipmap struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Data   []byte `json:"data"`
	}
	Format int
)

const (
	FormatInvalid Format = iota
	FormatGreyscale
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatRGB
	FormatRGBA
	FormatBGRA
	FormatBGR
)

const (
	ImageDataStartOffset = 0x80

	totalCubeSides = 6
)

// FormatSize is the byte size of one image of the given dimensions.
// Block-compressed formats round dimensions up to whole 4x4 blocks.
func FormatSize(format Format, width int, height int) int {
	switch format {
	case FormatDXT1:
		return ((width + 3) / 4) * ((height + 3) / 4) * 8
	case FormatDXT3, FormatDXT5:
		return ((width + 3) / 4) * ((height + 3) / 4) * 16
	case FormatGreyscale:
		return width * height
	case FormatRGB, FormatBGR:
		return width * height * 3
	case FormatRGBA, FormatBGRA:
		return width * height * 4
	}
	return 0
}

func minSize(format Format) int {
	switch format {
	case FormatGreyscale:
		return 1
	case FormatRGB, FormatBGR:
		return 3
	case FormatRGBA, FormatBGRA:
		return 4
	case FormatDXT1:
		return 8
	case FormatDXT3, FormatDXT5:
		return 16
	}
	return 0
}
