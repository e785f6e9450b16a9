package beach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Class
		label string
	}{
		{0, ClassVeryProtected, "Muito Protegida"},
		{5, ClassVeryProtected, "Muito Protegida"},
		{6, ClassProtected, "Protegida"},
		{10, ClassProtected, "Protegida"},
		{11, ClassExposed, "Exposta"},
		{15, ClassExposed, "Exposta"},
		{16, ClassVeryExposed, "Muito Exposta"},
		{20, ClassVeryExposed, "Muito Exposta"},
	}

	for _, tt := range tests {
		got := Classify(tt.score)
		assert.Equal(t, tt.want, got, "score %d", tt.score)
		assert.Equal(t, tt.label, got.Label(LocalePT), "score %d", tt.score)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := Classify(-1)
	for score := 0; score <= 40; score++ {
		c := Classify(score)
		assert.GreaterOrEqual(t, c, prev, "score %d", score)
		prev = c
	}
}

func TestClass_Label(t *testing.T) {
	assert.Equal(t, "Very Exposed", ClassVeryExposed.Label(LocaleEN))
	assert.Equal(t, "Exposta", ClassExposed.Label(Locale("fr")))
	assert.Empty(t, Class(9).Label(LocalePT))
}

func TestClass_Text(t *testing.T) {
	for c := ClassVeryProtected; c <= ClassVeryExposed; c++ {
		b, err := c.MarshalText()
		require.NoError(t, err)

		var got Class
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, c, got)
	}

	var c Class
	assert.Error(t, c.UnmarshalText([]byte("stormy")))
	assert.Equal(t, "class(7)", Class(7).String())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"", LocalePT, false},
		{"pt", LocalePT, false},
		{"PT-BR", LocalePT, false},
		{"en", LocaleEN, false},
		{" en_US ", LocaleEN, false},
		{"de", LocalePT, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
