package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "plain", raw: "Hello", want: "Hello"},
		{name: "trimmed", raw: "  Hi there \n", want: "Hi there"},
		{name: "apostrophe kept", raw: "We're looking into it", want: "We're looking into it"},
		{name: "comparison kept", raw: "if x<y and y>z then ok", want: "if x<y and y>z then ok"},
		{name: "markup kept verbatim", raw: "<b>Deal</b> & done", want: "<b>Deal</b> & done"},
		{name: "heart kept", raw: "I <3 this shop", want: "I <3 this shop"},
		{name: "inner zero width kept", raw: "\u200bco\u200bop\u200b", want: "co\u200bop"},
		{name: "nfc", raw: "café", want: "café"},
		{name: "empty", raw: "", wantErr: ErrEmptyBody},
		{name: "whitespace only", raw: " \t\n ", wantErr: ErrEmptyBody},
		{name: "zero width only", raw: "\u200b\u200b", wantErr: ErrEmptyBody},
		{name: "whitespace and bom", raw: " \ufeff\t\u2060 ", wantErr: ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBody(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBody_TruncatesToCap(t *testing.T) {
	SetMaxBodyLength(10)
	t.Cleanup(func() { SetMaxBodyLength(0) })

	got, err := NormalizeBody(strings.Repeat("ж", 25))
	require.NoError(t, err)
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestSetMaxBodyLength_ResetsOnNonPositive(t *testing.T) {
	SetMaxBodyLength(5)
	SetMaxBodyLength(-1)
	assert.Equal(t, DefaultMaxBodyLength, MaxBodyLength())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
