package service

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestMaskEmailAddress(t *testing.T) {
	cases := map[string]string{
		"alex@company.com": "a***x@company.com",
		"Al@Company.com":   "a***@company.com",
		"j@site.io":        "j***@site.io",
		"":                 "",
		"not-an-email":     "***",
		"josé@correo.es":   "j***é@correo.es",
		"éa@correo.es":     "é***@correo.es",
		"日本語@example.jp":   "日***語@example.jp",
	}
	for input, expected := range cases {
		masked := maskEmailAddress(input)
		require.Equal(t, expected, masked, input)
		require.True(t, utf8.ValidString(masked), input)
	}
}
