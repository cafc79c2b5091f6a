package cli

import (
	"reflect"
	"testing"
)

func TestSortDateKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "chronological not lexicographic",
			keys: []string{"2024-10-1", "2024-3-5", "2024-3-15", "2023-12-31"},
			want: []string{"2023-12-31", "2024-3-5", "2024-3-15", "2024-10-1"},
		},
		{
			name: "unparseable keys sort last",
			keys: []string{"garbage", "2024-1-1", "also-bad"},
			want: []string{"2024-1-1", "also-bad", "garbage"},
		},
		{
			name: "empty",
			keys: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := append([]string(nil), tt.keys...)
			sortDateKeys(keys)
			if len(keys) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(keys, tt.want) {
				t.Errorf("sortDateKeys(%v) = %v, want %v", tt.keys, keys, tt.want)
			}
		})
	}
}
