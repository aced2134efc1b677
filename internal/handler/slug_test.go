package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Digital Transformation in 2025":  "digital-transformation-in-2025",
		"  Leading & Trailing  ":          "leading-trailing",
		"Why Go? (A Retrospective)":       "why-go-a-retrospective",
		"already-a-slug":                  "already-a-slug",
		"UPPER case TITLE":                "upper-case-title",
		"":                                "",
		"!!!":                             "",
		"Cloud/Edge: What's Next, Really": "cloud-edge-what-s-next-really",
	}
	for title, want := range cases {
		assert.Equal(t, want, slugify(title), "title %q", title)
	}
}
