package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		prefix string
		want   string
	}{
		{"already international", "+14155551234", "+1", "+14155551234"},
		{"plus with separators", "+1 (415) 555-1234", "+1", "+14155551234"},
		{"bare national number", "4155551234", "+1", "+14155551234"},
		{"trunk zero dropped", "04155551234", "+1", "+14155551234"},
		{"prefix already present", "14155551234", "+1", "+14155551234"},
		{"other country prefix", "7911123456", "+44", "+447911123456"},
		{"no configured prefix", "4155551234", "", "+4155551234"},
		{"whitespace only", "   ", "+1", ""},
		{"no digits", "call me", "+1", ""},
		{"empty", "", "+1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPhone(tc.raw, tc.prefix))
		})
	}
}
