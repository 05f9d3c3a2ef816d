package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "General Information", want: "general-information"},
		{in: "  Dates & Times  ", want: "dates-times"},
		{in: "Already-slugged--text", want: "already-slugged-text"},
		{in: "Café Crème", want: "café-crème"},
		{in: "Ｆｕｌｌｗｉｄｔｈ", want: "fullwidth"},
		{in: "Über uns!", want: "über-uns"},
		{in: "_private_", want: "private"},
		{in: "", want: ""},
		{in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
