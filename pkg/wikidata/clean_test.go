package wikidata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCommonsFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "prefix and percent encoding",
			input: "http://commons.wikimedia.org/wiki/Special:FilePath/Flag%20of%20Austria.svg",
			want:  "Flag of Austria.svg",
		},
		{
			name:  "already clean",
			input: "Austria on the globe.svg",
			want:  "Austria on the globe.svg",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanCommonsFile(tt.input))
		})
	}
}

func TestCleanWikipediaTitle(t *testing.T) {
	assert.Equal(t, "People's_Republic_of_China",
		CleanWikipediaTitle("https://en.wikipedia.org/wiki/People%27s_Republic_of_China"))
	assert.Equal(t, "Austria", CleanWikipediaTitle("https://en.wikipedia.org/wiki/Austria"))
}

func TestEntityID(t *testing.T) {
	assert.Equal(t, "Q40", EntityID("http://www.wikidata.org/entity/Q40"))
	assert.Equal(t, "Q40", EntityID("Q40"))
}
