package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trinesolutions/website-backend/internal/content"
)

// A fresh deployment serves the defaults until the admin publishes real
// content, so every default entry must carry enough fields to render.
func TestDefaultsAreRenderable(t *testing.T) {
	for _, s := range content.DefaultServices() {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
	}
	for _, cs := range content.DefaultCaseStudies() {
		assert.NotEmpty(t, cs.ID)
		assert.NotEmpty(t, cs.Title)
	}
	for _, m := range content.DefaultTeam() {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Position)
	}
	for _, ts := range content.DefaultTestimonials() {
		assert.NotEmpty(t, ts.ID)
		assert.NotEmpty(t, ts.Content)
		assert.GreaterOrEqual(t, ts.Rating, 1)
		assert.LessOrEqual(t, ts.Rating, 5)
	}
}

func TestDefaultBlogPostSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range content.DefaultBlogPosts() {
		assert.NotEmpty(t, p.Slug, "post %q", p.Title)
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true
	}
}
