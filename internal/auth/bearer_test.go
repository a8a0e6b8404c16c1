package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{name: "lowercase", header: "bearer abc", want: "abc", ok: true},
		{name: "uppercase", header: "BEARER abc", want: "abc", ok: true},
		{name: "extra-spaces", header: "  Bearer   abc  ", want: "abc", ok: true},
		{name: "empty", header: "", ok: false},
		{name: "scheme-only", header: "Bearer", ok: false},
		{name: "scheme-and-space", header: "Bearer   ", ok: false},
		{name: "basic", header: "Basic dXNlcjpwdw==", ok: false},
		{name: "no-space", header: "Bearerabc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
