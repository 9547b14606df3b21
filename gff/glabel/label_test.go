package glabel

import (
	"testing"

	"aurora-gff/gff/gbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_EncodeDecode(t *testing.T) {
	bs, err := EncodeEntry("ScriptHeartbeat")
	require.NoError(t, err)
	require.Equal(t, DefaultEntrySize, len(bs))
	assert.Equal(t, []byte("ScriptHeartbeat\x00"), bs)

	label, err := DecodeEntry(gbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, "ScriptHeartbeat", label)
}

func TestLabel_Encode_FillsFullSlot(t *testing.T) {
	bs, err := EncodeEntry("LinkedToFlags123")
	require.NoError(t, err)
	assert.Equal(t, []byte("LinkedToFlags123"), bs)
}

func TestLabel_Encode_TooLong(t *testing.T) {
	_, err := EncodeEntry("ThisLabelIsLongerThanTheSlot")
	assert.ErrorAs(t, err, &gbytes.EncodingError{})
}

func TestLabel_Encode_NonASCII(t *testing.T) {
	_, err := EncodeEntry("Diagonale\xCC\x80")
	assert.ErrorAs(t, err, &gbytes.EncodingError{})
}

func TestLabel_Decode_NonASCII(t *testing.T) {
	bs := append([]byte{0xFF}, make([]byte, DefaultEntrySize-1)...)
	_, err := DecodeEntry(gbytes.NewBytesReader(bs))
	assert.ErrorAs(t, err, &gbytes.EncodingError{})
}

func TestLabel_DecodeBlock(t *testing.T) {
	first, err := EncodeEntry("Tag")
	require.NoError(t, err)
	second, err := EncodeEntry("LocalizedName")
	require.NoError(t, err)

	labels, err := DecodeBlock(gbytes.NewBytesReader(append(first, second...)), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tag", "LocalizedName"}, labels)
}
