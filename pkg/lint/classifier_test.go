package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want FileKind
	}{
		{"topics/a/tutorial.md", KindMarkdown},
		{"topics/a/tutorial.MD", KindMarkdown},
		{"topics/a/tutorial.bib", KindBib},
		{"topics/a/workflows/wf.ga", KindWorkflow},
		{"topics/a/image.png", KindOther},
		{"Makefile", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}
