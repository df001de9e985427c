package ccproto

import (
	"shanhu.io/misc/strutil"
)

func sortedKeys(m map[string][]string) []string {
	set := make(map[string]bool)
	for k := range m {
		set[k] = true
	}
	return strutil.SortedList(set)
}
