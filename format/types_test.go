package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueKind_String(t *testing.T) {
	require.Equal(t, "count", KindCount.String())
	require.Equal(t, "duration", KindDuration.String())
	require.Equal(t, "unknown", ValueKind(0).String())
	require.True(t, KindCount.IsValid())
	require.False(t, ValueKind(9).IsValid())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"ZSTD", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"Lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompression(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValueKind_Text(t *testing.T) {
	text, err := KindDuration.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "duration", string(text))

	var k ValueKind
	require.NoError(t, k.UnmarshalText([]byte("count")))
	require.Equal(t, KindCount, k)

	require.Error(t, k.UnmarshalText([]byte("bytes")))
	_, err = ValueKind(0).MarshalText()
	require.Error(t, err)
}
