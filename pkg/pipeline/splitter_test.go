package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "strip", []string{"strip"}},
		{"several", "strip_each | no_empty|join", []string{"strip_each", "no_empty", "join"}},
		{"empty stages dropped", "| strip || join |", []string{"strip", "join"}},
		{"pipe in single quotes", "join '|' | upper", []string{"join '|'", "upper"}},
		{"pipe in double quotes", `join "a|b"`, []string{`join "a|b"`}},
		{"other quote inside", `join "it's|x" | upper`, []string{`join "it's|x"`, "upper"}},
		{"brackets do not protect", "ifelse [a|b] c", []string{"ifelse [a", "b] c"}},
		{"escaped quote does not open", `join \' | upper`, []string{`join \'`, "upper"}},
		{"escaped pipe is kept", `join \| x`, []string{`join \| x`}},
		{"unterminated quote", "join 'a | b", []string{"join 'a | b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitStages(tt.text))
		})
	}
}
