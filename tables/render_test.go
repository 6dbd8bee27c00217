package tables

import (
	"strings"
	"testing"

	"github.com/reusee/typeof/typetags"
)

func TestRender(t *testing.T) {
	classifier := typetags.NewClassifier(typetags.Config{})
	str := Render(classifier, []int8{})
	for _, expected := range []string{
		"specific",
		"typedarray",
		"TypedArray",
		"int8array",
		"Int8Array",
	} {
		if !strings.Contains(str, expected) {
			t.Fatalf("expected %q in\n%s", expected, str)
		}
	}
	// header and four rows
	lines := 0
	for _, line := range strings.Split(str, "\n") {
		if strings.Contains(line, "true") || strings.Contains(line, "false") {
			lines++
		}
	}
	if lines != 4 {
		t.Fatalf("got %d rows in\n%s", lines, str)
	}
}
