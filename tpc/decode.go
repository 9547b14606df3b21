package tpc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

type (
	UnsupportedFormatError struct {
		PixelType  uint8
		Compressed bool
	}
)

func (r UnsupportedFormatError) Error() string {
	return fmt.Sprintf(
		"unsupported texture format (pixel type %d, compressed %v)",
		r.PixelType, r.Compressed,
	)
}

func Decode(bs []byte) (*Texture, error) {
	if len(bs) < ImageDataStartOffset {
		return nil, errors.Errorf(
			"TPC file holds %d bytes; the header alone needs %d",
			len(bs), ImageDataStartOffset,
		)
	}

	dataSize := int(binary.LittleEndian.Uint32(bs[0:4]))
	compressed := dataSize != 0
	alphaTest := math.Float32frombits(binary.LittleEndian.Uint32(bs[4:8]))
	width := int(binary.LittleEndian.Uint16(bs[8:10]))
	height := int(binary.LittleEndian.Uint16(bs[10:12]))
	pixelType := bs[12]
	mipmapCount := int(bs[13])

	format := resolveFormat(pixelType, compressed)
	if format == FormatInvalid {
		return nil, UnsupportedFormatError{PixelType: pixelType, Compressed: compressed}
	}

	texture := Texture{
		AlphaTest:   alphaTest,
		Width:       width,
		Height:      height,
		Format:      format,
		Compressed:  compressed,
		MipmapCount: mipmapCount,
	}

	layerCount := 1
	layerHeight := height
	if !compressed {
		dataSize = FormatSize(format, width, height)
	} else if width != 0 && height != 0 && height/width == totalCubeSides {
		// a compressed texture six times as tall as it is wide holds
		// one layer per cube side
		texture.CubeMap = true
		layerHeight = height / totalCubeSides
		layerCount = totalCubeSides
	}

	completeDataSize := dataSize
	for level := 1; level < mipmapCount; level++ {
		reducedWidth := max(width>>level, 1)
		reducedHeight := max(layerHeight>>level, 1)
		completeDataSize += FormatSize(format, reducedWidth, reducedHeight)
	}
	completeDataSize *= layerCount

	txiStart := ImageDataStartOffset + 0x72 + completeDataSize
	if txiStart < len(bs) {
		texture.TXI = strings.TrimSpace(asciiOnly(bs[txiStart:]))
	}

	texture.Layers = decodeLayers(bs, format, layerCount, width, layerHeight, mipmapCount, dataSize, texture.CubeMap)
	return &texture, nil
}

func resolveFormat(pixelType uint8, compressed bool) Format {
	if compressed {
		switch pixelType {
		case 2:
			return FormatDXT1
		case 4:
			return FormatDXT5
		}
		return FormatInvalid
	}
	switch pixelType {
	case 1:
		return FormatGreyscale
	case 2:
		return FormatRGB
	case 4:
		return FormatRGBA
	case 12:
		return FormatBGRA
	}
	return FormatInvalid
}

func decodeLayers(
	bs []byte,
	format Format,
	layerCount int,
	width int,
	height int,
	mipmapCount int,
	dataSize int,
	cubeMap bool,
) []Layer {
	layers := make([]Layer, 0, layerCount)
	pos := ImageDataStartOffset

	for layerIndex := 0; layerIndex < layerCount; layerIndex++ {
		layer := Layer{}
		layerWidth := width
		layerHeight := height
		layerSize := FormatSize(format, layerWidth, layerHeight)
		if cubeMap {
			layerSize = dataSize
		}

		for mipmapIndex := 0; mipmapIndex < mipmapCount; mipmapIndex++ {
			mipmapSize := max(layerSize, minSize(format))
			if pos+mipmapSize > len(bs) {
				break
			}
			layer.Mipmaps = append(layer.Mipmaps, Mipmap{
				Width:  max(layerWidth, 1),
				Height: max(layerHeight, 1),
				Data:   append([]byte{}, bs[pos:pos+mipmapSize]...),
			})
			pos += mipmapSize
			if pos >= len(bs) {
				break
			}

			layerWidth >>= 1
			layerHeight >>= 1
			layerSize = FormatSize(format, max(layerWidth, 1), max(layerHeight, 1))
			if layerWidth < 1 && layerHeight < 1 {
				break
			}
		}
		layers = append(layers, layer)
	}
	return layers
}

func asciiOnly(bs []byte) string {
	builder := strings.Builder{}
	for _, b := range bs {
		if b < 0x80 {
			builder.WriteByte(b)
		}
	}
	return builder.String()
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
