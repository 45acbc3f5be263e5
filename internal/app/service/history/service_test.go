package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListRequest
		want ListRequest
	}{
		{
			name: "zero value gets defaults",
			in:   ListRequest{},
			want: ListRequest{Size: 50, SortBy: "scanned_at", SortOrder: "desc"},
		},
		{
			name: "explicit values survive",
			in:   ListRequest{From: 20, Size: 10, SortBy: "created_at", SortOrder: "asc"},
			want: ListRequest{From: 20, Size: 10, SortBy: "created_at", SortOrder: "asc"},
		},
		{
			name: "negative from resets",
			in:   ListRequest{From: -5, Size: 10},
			want: ListRequest{Size: 10, SortBy: "scanned_at", SortOrder: "desc"},
		},
		{
			name: "unknown sort order falls back to desc",
			in:   ListRequest{Size: 10, SortOrder: "sideways"},
			want: ListRequest{Size: 10, SortBy: "scanned_at", SortOrder: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.want, tt.in)
		})
	}
}
