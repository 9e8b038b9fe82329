package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want KeyName
		ok   bool
	}{
		{in: "?", want: KeyHelp, ok: true},
		{in: "q", want: KeyQuit, ok: true},
		{in: "ctrl+c", want: KeyQuit, ok: true},
		{in: "r", want: KeyReload, ok: true},
		{in: "j", want: KeyScrollDown, ok: true},
		{in: "left", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Lookup(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBindingsMatchStringsMap(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		b, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, b.Keys(), s, "binding for %q does not list it", s)
		assert.NotEmpty(t, b.Help().Desc)
	}
}
