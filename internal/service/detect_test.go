package service

import (
	"testing"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestHasHTTPS(t *testing.T) {
	assert.True(t, hasHTTPS(&models.PageInput{URL: "https://example.com"}))
	assert.True(t, hasHTTPS(&models.PageInput{URL: "HTTPS://EXAMPLE.COM"}))
	assert.False(t, hasHTTPS(&models.PageInput{URL: "http://example.com"}))
	assert.False(t, hasHTTPS(&models.PageInput{URL: ""}))
}

func TestTitleKeywordInH1(t *testing.T) {
	cases := []struct {
		name  string
		title string
		h1s   []string
		want  bool
	}{
		{
			name:  "significant word overlaps",
			title: "The Complete Guide to Sourdough Baking",
			h1s:   []string{"Sourdough for Beginners"},
			want:  true,
		},
		{
			name:  "only short words overlap",
			title: "How to Fix It",
			h1s:   []string{"A Way to Do It"},
			want:  false,
		},
		{
			name:  "no title",
			title: "",
			h1s:   []string{"Anything"},
			want:  false,
		},
		{
			name:  "no h1",
			title: "Sourdough Guide",
			h1s:   nil,
			want:  false,
		},
		{
			name:  "case insensitive",
			title: "SOURDOUGH Guide",
			h1s:   []string{"all about sourdough"},
			want:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &models.PageInput{Title: tc.title, H1s: tc.h1s}
			assert.Equal(t, tc.want, titleKeywordInH1(p))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First sentence. Second one! Third?  ")

	assert.Equal(t, []string{"First sentence", "Second one", "Third"}, sentences)
	assert.Empty(t, splitSentences(""))
	assert.Empty(t, splitSentences("   "))
}

func TestAvgSentenceLength(t *testing.T) {
	assert.Equal(t, 0.0, avgSentenceLength(""))
	assert.Equal(t, 2.0, avgSentenceLength("Two words. Two more."))
	assert.Equal(t, 3.0, avgSentenceLength("One two three. Four five six."))
}

func TestFirstParagraph(t *testing.T) {
	assert.Equal(t, "", firstParagraph(""))
	assert.Equal(t, "Opening paragraph here", firstParagraph("Opening paragraph here\n\nSecond paragraph."))
	// Without a blank line the first two sentences stand in for a paragraph.
	assert.Equal(t, "One two. Three four", firstParagraph("One two. Three four. Five six."))
}

func TestSchemaTypesDeduplicates(t *testing.T) {
	p := &models.PageInput{
		StructuredData: []string{
			`{"@type":"Article","author":{"@type":"Person"}}`,
			`{"@type":"Article"}`,
		},
	}

	assert.Equal(t, []string{"Article", "Person"}, SchemaTypes(p))
}

func TestSchemaTypesFromRawHTML(t *testing.T) {
	p := &models.PageInput{
		RawHTML: `<script type="application/ld+json">{"@type":"HowTo"}</script>`,
	}

	assert.Equal(t, []string{"HowTo"}, SchemaTypes(p))
}

func TestHasStatistics(t *testing.T) {
	assert.True(t, hasStatistics(&models.PageInput{PlainText: "Traffic grew 45% last quarter."}))
	assert.True(t, hasStatistics(&models.PageInput{PlainText: "Over 3 million readers."}))
	assert.True(t, hasStatistics(&models.PageInput{PlainText: "It costs $20 to start."}))
	assert.False(t, hasStatistics(&models.PageInput{PlainText: "Chapter 7 covers the rest."}))
}

func TestHasAuthorByline(t *testing.T) {
	assert.True(t, hasAuthorByline(&models.PageInput{PlainText: "By Jane Smith"}))
	assert.True(t, hasAuthorByline(&models.PageInput{RawHTML: `<span class="author-name">J</span>`}))
	assert.True(t, hasAuthorByline(&models.PageInput{RawHTML: `Written by our staff`}))
	assert.False(t, hasAuthorByline(&models.PageInput{PlainText: "by the seaside we walked"}))
}

func TestHasLangAttribute(t *testing.T) {
	assert.True(t, hasLangAttribute(&models.PageInput{RawHTML: `<html lang="en">`}))
	assert.True(t, hasLangAttribute(&models.PageInput{RawHTML: `<HTML LANG="de-DE">`}))
	assert.False(t, hasLangAttribute(&models.PageInput{RawHTML: `<html><body lang="en">`}))
}
