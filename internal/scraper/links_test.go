package scraper

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCollectDocumentLinks(t *testing.T) {
	base, err := url.Parse("https://example.test")
	require.NoError(t, err)

	testCases := []struct {
		name string
		html string
		want []DocumentLink
	}{
		{
			name: "relative pdf link resolves against base",
			html: `<a href="/docs/x.pdf">Final Judgment</a>`,
			want: []DocumentLink{
				{URL: "https://example.test/docs/x.pdf", Title: "Final Judgment", Type: DocTypeJudgment},
			},
		},
		{
			name: "absolute links pass through unchanged",
			html: `<a href="https://other.test/order_15.pdf">Order dated 15.03.2023</a>`,
			want: []DocumentLink{
				{URL: "https://other.test/order_15.pdf", Title: "Order dated 15.03.2023", Type: DocTypeOrder},
			},
		},
		{
			name: "download href without pdf extension is included",
			html: `<a href="/download?id=42">Notice to respondent</a>`,
			want: []DocumentLink{
				{URL: "https://example.test/download?id=42", Title: "Notice to respondent", Type: DocTypeNotice},
			},
		},
		{
			name: "empty anchor text defaults to Document",
			html: `<a href="/files/a.PDF"></a>`,
			want: []DocumentLink{
				{URL: "https://example.test/files/a.PDF", Title: "Document", Type: DocTypeDocument},
			},
		},
		{
			name: "judgement spelling classifies as judgment",
			html: `<a href="/j.pdf">Judgement copy</a>`,
			want: []DocumentLink{
				{URL: "https://example.test/j.pdf", Title: "Judgement copy", Type: DocTypeJudgment},
			},
		},
		{
			name: "document order preserved, duplicates kept",
			html: `<a href="/a.pdf">Order one</a>
				<a href="/b.pdf">Daily notice</a>
				<a href="/a.pdf">Order one</a>`,
			want: []DocumentLink{
				{URL: "https://example.test/a.pdf", Title: "Order one", Type: DocTypeOrder},
				{URL: "https://example.test/b.pdf", Title: "Daily notice", Type: DocTypeNotice},
				{URL: "https://example.test/a.pdf", Title: "Order one", Type: DocTypeOrder},
			},
		},
		{
			name: "plain page links are ignored",
			html: `<a href="/about.html">About</a><a href="mailto:registry@example.test">Mail</a>`,
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseHTML(t, tc.html)
			got := CollectDocumentLinks(doc, base)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CollectDocumentLinks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyDocumentType(t *testing.T) {
	testCases := []struct {
		title string
		want  string
	}{
		{"Interim Order", DocTypeOrder},
		{"Final JUDGMENT", DocTypeJudgment},
		{"Judgement", DocTypeJudgment},
		{"Court Notice", DocTypeNotice},
		{"Annexure P-1", DocTypeDocument},
		{"", DocTypeDocument},
	}

	for _, tc := range testCases {
		if got := classifyDocumentType(tc.title); got != tc.want {
			t.Errorf("classifyDocumentType(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
