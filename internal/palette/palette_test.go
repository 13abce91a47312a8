package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "none", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
		{name: "fewer than base", n: 3, want: 3},
		{name: "exactly base", n: 5, want: 5},
		{name: "more than base cycles", n: 12, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Colors(tt.n)
			assert.Len(t, got, tt.want)
			for i, c := range got {
				assert.Equal(t, Base[i%len(Base)], c)
			}
		})
	}
}

func TestColors_Pure(t *testing.T) {
	a := Colors(7)
	a[0].R = 0
	assert.Equal(t, uint8(0xff), Colors(7)[0].R, "callers cannot mutate the base palette")
}

func TestHex(t *testing.T) {
	want := []string{"#ff9999", "#66b3ff", "#99ff99", "#ffcc99", "#c2c2f0"}
	for i, c := range Base {
		assert.Equal(t, want[i], Hex(c))
	}
	assert.Equal(t, "#87ceeb", Hex(SkyBlue))
}
