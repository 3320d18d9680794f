package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPhrases = []string{
	"no record found",
	"invalid case number",
	"case not found",
	"error occurred",
	"invalid input",
}

func TestClassifierMatch(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "no record found regardless of case",
			html: `<body><h2>No Record Found</h2></body>`,
			want: "no record found",
		},
		{
			name: "invalid case number",
			html: `<body><span class="err">Invalid Case Number entered</span></body>`,
			want: "invalid case number",
		},
		{
			name: "case not found",
			html: `<body>Sorry, Case Not Found.</body>`,
			want: "case not found",
		},
		{
			name: "error occurred",
			html: `<body><p>An ERROR OCCURRED while processing</p></body>`,
			want: "error occurred",
		},
		{
			name: "invalid input",
			html: `<body>invalid input</body>`,
			want: "invalid input",
		},
		{
			name: "phrase split across markup still matches visible text",
			html: `<body><b>No</b> record found</body>`,
			want: "no record found",
		},
		{
			name: "results page proceeds",
			html: `<body><table><tr><td>Status</td><td>Pending</td></tr></table></body>`,
			want: "",
		},
		{
			name: "phrase inside attribute is not visible text",
			html: `<body><div data-msg="no record found">Case details</div></body>`,
			want: "",
		},
	}

	classifier := NewClassifier(testPhrases)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseHTML(t, tc.html)
			assert.Equal(t, tc.want, classifier.Match(doc))
		})
	}
}

func TestClassifierCustomPhrases(t *testing.T) {
	classifier := NewClassifier([]string{" Abhilekh Uplabdh Nahin "})
	doc := parseHTML(t, `<body>abhilekh uplabdh nahin</body>`)
	assert.Equal(t, "abhilekh uplabdh nahin", classifier.Match(doc))
}
