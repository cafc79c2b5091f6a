package cli

import (
	"fmt"
	"sort"
)

// sortDateKeys orders unpadded "{year}-{month}-{day}" keys chronologically.
// Keys that do not parse sort after all valid dates, alphabetically.
func sortDateKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		yi, mi, di, oki := parseDateKey(keys[i])
		yj, mj, dj, okj := parseDateKey(keys[j])

		if oki && okj {
			if yi != yj {
				return yi < yj
			}
			if mi != mj {
				return mi < mj
			}
			return di < dj
		}
		if oki {
			return true
		}
		if okj {
			return false
		}
		return keys[i] < keys[j]
	})
}

func parseDateKey(key string) (year, month, day int, ok bool) {
	n, err := fmt.Sscanf(key, "%d-%d-%d", &year, &month, &day)
	return year, month, day, err == nil && n == 3
}
