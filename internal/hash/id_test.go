package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, ID("test"), Checksum([]byte("test")))
	assert.NotEqual(t, Checksum([]byte("slow_pow")), Checksum([]byte("fast_pow")))
}

func BenchmarkID(b *testing.B) {
	for b.Loop() {
		ID("duplicates-comparation")
	}
}
