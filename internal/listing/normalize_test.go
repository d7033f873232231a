package listing_test

import (
	"testing"

	"github.com/MichalMitros/etsy-listing-publisher/internal/listing"
	"github.com/stretchr/testify/assert"
)

func TestUnitNormalizeTitle(t *testing.T) {
	tests := map[string]struct {
		title string
		want  string
	}{
		"plain title": {
			title: "Wooden Birdhouse",
			want:  "Wooden Birdhouse",
		},
		"collapsed whitespace": {
			title: "Wooden \t Birdhouse\n small",
			want:  "Wooden Birdhouse small",
		},
		"colon replaced": {
			title: "Birdhouse: small",
			want:  "Birdhouse - small",
		},
		"forbidden leading characters": {
			title: " +-!?Birdhouse",
			want:  "Birdhouse",
		},
		"leading colon": {
			title: ":Birdhouse",
			want:  "Birdhouse",
		},
		"empty": {
			title: "   ",
			want:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.NormalizeTitle(tt.title), "should normalize title")
		})
	}
}

func TestUnitStripDescription(t *testing.T) {
	tests := map[string]struct {
		description string
		want        string
	}{
		"plain text": {
			description: "a small birdhouse",
			want:        "a small birdhouse",
		},
		"html tags removed": {
			description: "<p>a <b>small</b> birdhouse</p>",
			want:        "a small birdhouse",
		},
		"entities decoded": {
			description: "black &amp; white",
			want:        "black & white",
		},
		"tags then entities": {
			description: "<div>5 &lt; 6</div>",
			want:        "5 < 6",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.StripDescription(tt.description), "should strip description")
		})
	}
}

func TestUnitTruthy(t *testing.T) {
	for _, value := range []string{"1", "y", "Y", "true", "TRUE"} {
		assert.True(t, listing.Truthy(value), "%q should be truthy", value)
	}
	for _, value := range []string{"", "0", "n", "false", "yes"} {
		assert.False(t, listing.Truthy(value), "%q shouldn't be truthy", value)
	}
}
