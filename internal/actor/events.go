package actor

import "strings"

// Events is a set of things that happened during a frame or tick.
type Events uint16

const (
	Landed Events = 1 << iota
	Jumped
	Hurt
	Died
	GainedSupport
	LostSupport
)

// Has reports whether every event in e is set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

var eventNames = []struct {
	e    Events
	name string
}{
	{Landed, "landed"},
	{Jumped, "jumped"},
	{Hurt, "hurt"},
	{Died, "died"},
	{GainedSupport, "gained-support"},
	{LostSupport, "lost-support"},
}

func (ev Events) String() string {
	var parts []string
	for _, n := range eventNames {
		if ev&n.e != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
