package iconlist

import (
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// occurrences maps icon names to the list positions they occur at. Names are
// kept in order of first occurrence.
type occurrences struct {
	m *linkedhashmap.Map
}

func indexNames(l List) occurrences {
	occ := occurrences{m: linkedhashmap.New()}
	for i, icon := range l {
		occ.add(icon.Name, i)
	}
	return occ
}

func (occ occurrences) add(name string, index int) {
	if v, found := occ.m.Get(name); found {
		occ.m.Put(name, append(v.([]int), index))
		return
	}
	occ.m.Put(name, []int{index})
}

func (occ occurrences) contains(name string) bool {
	_, found := occ.m.Get(name)
	return found
}

type duplicate struct {
	name    string
	indexes []int
}

// duplicates lists all names occurring more than once, in order of first occurrence.
func (occ occurrences) duplicates() []duplicate {
	var dups []duplicate
	it := occ.m.Iterator()
	for it.Next() {
		if indexes := it.Value().([]int); len(indexes) > 1 {
			dups = append(dups, duplicate{name: it.Key().(string), indexes: indexes})
		}
	}
	return dups
}

// alternative finds the first of name+"Alt", name+"Alt1", name+"Alt2", …
// not yet known to occ.
func (occ occurrences) alternative(name string) string {
	candidate := name + "Alt"
	for counter := 1; occ.contains(candidate); counter++ {
		candidate = name + "Alt" + strconv.Itoa(counter)
	}
	return candidate
}

// Deduplicate renames icons to avoid name conflicts. This is needed for fonts
// like Google's "Material Icons Regular", which list some icons twice.
//
// The first occurrence of a name is kept, every further occurrence gets the
// first free name from the sequence <name>Alt, <name>Alt1, <name>Alt2, … .
// Names introduced by renaming are taken into account for later renames.
// The result has the same length and order as l; l itself is not modified.
func Deduplicate(l List) List {
	result := make(List, len(l))
	copy(result, l)
	occ := indexNames(l)
	for _, dup := range occ.duplicates() {
		for _, index := range dup.indexes[1:] {
			name := occ.alternative(dup.name)
			occ.add(name, index)
			result[index] = result[index].Renamed(name)
			tracer().Debugf("renaming duplicate icon %s at #%d to %s", dup.name, index, name)
		}
	}
	return result
}
