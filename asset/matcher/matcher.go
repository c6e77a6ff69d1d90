package matcher

import (
	"sort"
	"strings"

	"github.com/viant/baiwen/asset"
)

// Sources represents a set of unique record sources.
type Sources map[string]struct{}

// Match returns sources of records whose name contains pattern and whose type
// belongs to types. An empty pattern matches every name.
func Match(records []asset.Record, pattern string, types asset.TypeSet) Sources {
	ret := Sources{}
	for i := range records {
		record := &records[i]
		if !types.Has(record.Type) {
			continue
		}
		if strings.Contains(record.Name, pattern) {
			ret[record.Source] = struct{}{}
		}
	}
	return ret
}

// Has reports whether source is in the set.
func (s Sources) Has(source string) bool {
	_, ok := s[source]
	return ok
}

// Len returns number of unique sources.
func (s Sources) Len() int {
	return len(s)
}

// Slice returns sources in map iteration order.
func (s Sources) Slice() []string {
	ret := make([]string, 0, len(s))
	for source := range s {
		ret = append(ret, source)
	}
	return ret
}

// Sorted returns sources in lexical order.
func (s Sources) Sorted() []string {
	ret := s.Slice()
	sort.Strings(ret)
	return ret
}
