package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: `"hello"`},
		{name: "double_quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "backslash_then_quote", in: `\"`, want: `"\\\""`},
		{name: "empty", in: "", want: `""`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scriptString(tt.in))
		})
	}
}

func TestBodyHTML(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<div>one</div>", bodyHTML("one"))
	assert.Equal(t, "<div>one</div><div>two</div>", bodyHTML("one\ntwo"))
	assert.Equal(t, "<div>a</div><div><br></div><div>b</div>", bodyHTML("a\n\nb"))
	assert.Equal(t, "<div>&lt;script&gt;</div>", bodyHTML("<script>"))
	assert.Equal(t, "<div><br></div>", bodyHTML(""))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("  \n "))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
}
