// Package refdata provides the static reference tables used by the
// resolvers: Taiwan universities, majors, US universities and the
// graduate program vocabulary. Tables are built once at startup and
// never mutated afterwards; resolvers share them read-only.
package refdata

// Tables bundles every reference table plus the derived lookup maps.
// Build with Load() once at process start.
type Tables struct {
	// Taiwan universities
	Universities []University
	UniByID      map[string]University
	UID2Cname    map[string]string
	Cname2UID    map[string]string
	Cabbr2UID    map[string]string
	Name2UID     map[string]string
	IP2UID       map[string]string

	// Majors
	Majors     []Major
	MajorByID  map[string]Major
	MID2Name   map[string]string
	MCname2MID map[string]string
	MCabbr2MID map[string]string
	MName2MID  map[string]string
	MID2Type   map[string]string

	// US universities
	US USUniversities

	// Program vocabulary
	Programs ProgramTable
}

// Load builds all reference tables and their lookup maps.
// Panics if the program vocabulary is inconsistent (a program without a
// type mapping); that is a build-time defect, not a runtime condition.
func Load() *Tables {
	t := &Tables{
		Universities: twUniversities,
		UniByID:      make(map[string]University, len(twUniversities)),
		UID2Cname:    make(map[string]string, len(twUniversities)),
		Cname2UID:    make(map[string]string, len(twUniversities)),
		Cabbr2UID:    make(map[string]string, len(twUniversities)),
		Name2UID:     make(map[string]string, len(twUniversities)),
		IP2UID:       make(map[string]string, len(twUniversities)),

		Majors:     majors,
		MajorByID:  make(map[string]Major, len(majors)),
		MID2Name:   make(map[string]string, len(majors)),
		MCname2MID: make(map[string]string, len(majors)),
		MCabbr2MID: make(map[string]string, len(majors)),
		MName2MID:  make(map[string]string, len(majors)),
		MID2Type:   make(map[string]string, len(majors)),

		US:       usUniversities,
		Programs: buildProgramTable(),
	}

	for _, u := range twUniversities {
		t.UniByID[u.ID] = u
		t.UID2Cname[u.ID] = u.Cname
		if u.Cname != "" {
			t.Cname2UID[u.Cname] = u.ID
		}
		if u.Cabbr != "" {
			t.Cabbr2UID[u.Cabbr] = u.ID
		}
		if u.Name != "" {
			t.Name2UID[u.Name] = u.ID
		}
		if u.IP != "" {
			t.IP2UID[u.IP] = u.ID
		}
	}

	for _, m := range majors {
		t.MajorByID[m.ID] = m
		t.MID2Name[m.ID] = m.Cname
		if m.Cname != "" {
			t.MCname2MID[m.Cname] = m.ID
		}
		if m.Cabbr != "" {
			t.MCabbr2MID[m.Cabbr] = m.ID
		}
		if m.Name != "" {
			t.MName2MID[m.Name] = m.ID
		}
		t.MID2Type[m.ID] = m.Type
	}

	return t
}
