package tpc

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHeader(dataSize uint32, width uint16, height uint16, pixelType byte, mipmapCount byte) []byte {
	bs := make([]byte, ImageDataStartOffset)
	binary.LittleEndian.PutUint32(bs[0:4], dataSize)
	binary.LittleEndian.PutUint32(bs[4:8], math.Float32bits(0.5))
	binary.LittleEndian.PutUint16(bs[8:10], width)
	binary.LittleEndian.PutUint16(bs[10:12], height)
	bs[12] = pixelType
	bs[13] = mipmapCount
	return bs
}

func TestDecode_GreyscaleMipmapChain(t *testing.T) {
	// a 4x4 greyscale image with 3 mipmap levels: 16 + 4 + 1 bytes
	bs := createHeader(0, 4, 4, 1, 3)
	for i := 0; i < 21; i++ {
		bs = append(bs, byte(i))
	}

	texture, err := Decode(bs)
	require.NoError(t, err)

	assert.Equal(t, FormatGreyscale, texture.Format)
	assert.False(t, texture.Compressed)
	assert.False(t, texture.CubeMap)
	assert.Equal(t, 4, texture.Width)
	assert.Equal(t, 4, texture.Height)
	assert.Equal(t, float32(0.5), texture.AlphaTest)
	assert.Equal(t, 3, texture.MipmapCount)

	require.Len(t, texture.Layers, 1)
	mipmaps := texture.Layers[0].Mipmaps
	require.Len(t, mipmaps, 3)

	assert.Equal(t, 4, mipmaps[0].Width)
	assert.Equal(t, 16, len(mipmaps[0].Data))
	assert.Equal(t, byte(0), mipmaps[0].Data[0])

	assert.Equal(t, 2, mipmaps[1].Width)
	assert.Equal(t, []byte{16, 17, 18, 19}, mipmaps[1].Data)

	assert.Equal(t, 1, mipmaps[2].Width)
	assert.Equal(t, []byte{20}, mipmaps[2].Data)
}

func TestDecode_CompressedCubeMap(t *testing.T) {
	// DXT1, six 4x4 sides stacked vertically; one 8-byte block per side
	bs := createHeader(8, 4, 24, 2, 1)
	for side := 0; side < 6; side++ {
		for i := 0; i < 8; i++ {
			bs = append(bs, byte(side))
		}
	}

	texture, err := Decode(bs)
	require.NoError(t, err)

	assert.Equal(t, FormatDXT1, texture.Format)
	assert.True(t, texture.Compressed)
	assert.True(t, texture.CubeMap)
	require.Len(t, texture.Layers, 6)
	for side, layer := range texture.Layers {
		require.Len(t, layer.Mipmaps, 1)
		assert.Equal(t, 8, len(layer.Mipmaps[0].Data))
		assert.Equal(t, byte(side), layer.Mipmaps[0].Data[0])
	}
}

func TestDecode_TXIFooter(t *testing.T) {
	pixels := make([]byte, 16)
	bs := createHeader(0, 4, 4, 1, 1)
	bs = append(bs, pixels...)
	bs = append(bs, make([]byte, 0x72)...)
	bs = append(bs, "blend additive\n"...)

	texture, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, "blend additive", texture.TXI)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	bs := createHeader(0, 4, 4, 3, 1)

	_, err := Decode(bs)
	formatErr := UnsupportedFormatError{}
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, uint8(3), formatErr.PixelType)
	assert.False(t, formatErr.Compressed)
}

func TestDecode_TooShort(t *testing.T) {
	_, err := Decode(make([]byte, 10))
	assert.Error(t, err)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, 16, FormatSize(FormatGreyscale, 4, 4))
	assert.Equal(t, 48, FormatSize(FormatRGB, 4, 4))
	assert.Equal(t, 64, FormatSize(FormatRGBA, 4, 4))
	// block compression rounds up to whole 4x4 blocks
	assert.Equal(t, 8, FormatSize(FormatDXT1, 2, 2))
	assert.Equal(t, 32, FormatSize(FormatDXT5, 5, 5))
}
