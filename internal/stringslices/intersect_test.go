package stringslices_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mentessaas/a2a-protocol/internal/stringslices"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "common elements keep b order",
			a:    []string{"translate", "summarize", "ocr"},
			b:    []string{"ocr", "translate"},
			want: []string{"ocr", "translate"},
		},
		{
			name: "no overlap",
			a:    []string{"translate"},
			b:    []string{"summarize"},
			want: nil,
		},
		{
			name: "case sensitive",
			a:    []string{"Translate"},
			b:    []string{"translate"},
			want: nil,
		},
		{
			name: "empty inputs",
			a:    nil,
			b:    nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stringslices.Intersect(tt.a, tt.b))
		})
	}
}
