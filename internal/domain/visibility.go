package domain

import "strings"

// ListMode selects which polls a viewer enumerates.
type ListMode string

const (
	// ListModeOwn lists the viewer's own polls, all of them.
	ListModeOwn ListMode = "own"
	// ListModeFriends lists polls by the viewer and their friends (or by the
	// requested authors) that the viewer may see.
	ListModeFriends ListMode = "friends"
	// ListModeExplore lists every poll the viewer may see, from anyone.
	ListModeExplore ListMode = "explore"
)

func (m ListMode) String() string { return string(m) }

func (m ListMode) IsValid() bool {
	switch m {
	case ListModeOwn, ListModeFriends, ListModeExplore:
		return true
	}
	return false
}

// ParseListMode maps a transport value to a ListMode. An empty value means
// explore and "browse" is accepted as an alias of friends.
func ParseListMode(s string) (ListMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ListModeExplore, true
	case "browse":
		return ListModeFriends, true
	}
	m := ListMode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// PollFilter describes a poll enumeration request for one viewer.
type PollFilter struct {
	Viewer     string
	Mode       ListMode
	Categories []string // category prefixes; empty = no category filter
	Authors    []string // empty = no author filter
	Offset     int
	Limit      int
}

// CanView reports whether viewer may see the poll at all: owners always
// can, others only when the poll is not hidden or they are allow-listed.
func CanView(p *Poll, viewer string) bool {
	return p.Owner == viewer || !p.Privacy.PollHidden || p.Privacy.IsAllowed(viewer)
}

// ResultsVisible reports whether a viewer may see the poll's counts, ratios
// and voter preview: only once they voted, unless results are public.
// Owners get no exception.
func ResultsVisible(p *Poll, voted bool) bool {
	return voted || !p.Privacy.ResultsHidden
}

// Matches is the in-memory form of the listing predicate the repository
// renders as SQL. friends is the viewer's friend list and is only consulted
// in friends mode without an author filter.
func (f PollFilter) Matches(p *Poll, friends []string) bool {
	if !MatchesCategoryPrefix(p.Categories, f.Categories) {
		return false
	}
	if len(f.Authors) > 0 && !contains(f.Authors, p.Owner) {
		return false
	}

	switch f.Mode {
	case ListModeOwn:
		return p.Owner == f.Viewer
	case ListModeFriends:
		if !CanView(p, f.Viewer) {
			return false
		}
		if len(f.Authors) > 0 {
			return true
		}
		return p.Owner == f.Viewer || contains(friends, p.Owner)
	case ListModeExplore:
		return !p.Privacy.PollHidden || p.Privacy.IsAllowed(f.Viewer)
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
