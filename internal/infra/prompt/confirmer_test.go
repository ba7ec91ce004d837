package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			confirmer := NewTerminalConfirmer(strings.NewReader(tt.input), &out)

			got, err := confirmer.Confirm(context.Background(), "Delete product?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete product? [y/N]: ", out.String())
		})
	}
}

func TestTerminalConfirmer_ContextCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	confirmer := NewTerminalConfirmer(reader, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	got, err := confirmer.Confirm(ctx, "Log out?")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, got)
}

func TestStaticConfirmer(t *testing.T) {
	yes, err := NewStaticConfirmer(true).Confirm(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := NewStaticConfirmer(false).Confirm(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, no)
}
