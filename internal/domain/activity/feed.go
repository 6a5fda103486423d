package activity

import (
	"sort"
	"time"
)

// DefaultStuckThreshold is how old a pending activity may be before the clean
// view treats it as stuck. Product heuristic, tunable via configuration.
const DefaultStuckThreshold = 24 * time.Hour

// EntryKind tags the two variants of a feed entry.
type EntryKind string

const (
	EntryKindHeader   EntryKind = "header"
	EntryKindActivity EntryKind = "activity"
)

// Header is a display-only section marker ("Pending activity", "Today", ...).
type Header struct {
	Title            string `json:"title"`
	Key              string `json:"key"`
	IsPendingSection bool   `json:"isPendingSection,omitempty"`
	HasPending       bool   `json:"hasPending,omitempty"`
	HasCancelled     bool   `json:"hasCancelled,omitempty"`
	// HasActivePending is true when at least one pending entry is still
	// within the stuck threshold; consumers use it to show a spinner.
	HasActivePending bool `json:"hasActivePending,omitempty"`
}

// Entry is one element of the display-ready feed: either a section Header or
// an activity Item. Entries are recomputed on every grouping call and never
// persisted.
type Entry struct {
	Kind     EntryKind `json:"kind"`
	Header   *Header   `json:"header,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

// Grouper turns a flat activity list into an ordered sequence of section
// headers and items. It is a pure transformation: the only ambient input is
// the wall clock, sampled once per call so stuck detection and day labels are
// consistent across the whole output.
type Grouper struct {
	StuckThreshold time.Duration
	Now            func() time.Time
}

// NewGrouper returns a grouper with the given stuck threshold.
// A zero threshold falls back to DefaultStuckThreshold.
func NewGrouper(stuckThreshold time.Duration) *Grouper {
	if stuckThreshold <= 0 {
		stuckThreshold = DefaultStuckThreshold
	}
	return &Grouper{StuckThreshold: stuckThreshold, Now: time.Now}
}

// Group produces the display feed for the given activities. When showAll is
// true (admin view) every record passes through unfiltered; otherwise the
// clean view drops stuck pending, cancelled, and zero-amount failed/expired
// records.
func (g *Grouper) Group(activities []*Activity, showAll bool) []Entry {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	return g.GroupAt(activities, showAll, now)
}

// GroupAt is Group with an explicit clock, used by callers that need a fixed
// reference instant.
func (g *Grouper) GroupAt(activities []*Activity, showAll bool, now time.Time) []Entry {
	sorted := make([]*Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventTime().After(sorted[j].EventTime())
	})

	filtered := sorted
	if !showAll {
		filtered = filtered[:0:0]
		for _, a := range sorted {
			if g.hiddenInCleanView(a, now) {
				continue
			}
			filtered = append(filtered, a)
		}
	}

	var pending, cancelled, completed []*Activity
	for _, a := range filtered {
		switch a.Status {
		case StatusPending:
			pending = append(pending, a)
		case StatusCancelled:
			cancelled = append(cancelled, a)
		default:
			completed = append(completed, a)
		}
	}

	var feed []Entry

	if len(pending) > 0 || len(cancelled) > 0 {
		hasActive := false
		for _, a := range pending {
			if !g.IsStuck(a, now) {
				hasActive = true
				break
			}
		}
		feed = append(feed, Entry{
			Kind: EntryKindHeader,
			Header: &Header{
				Title:            "Pending activity",
				Key:              "header-pending",
				IsPendingSection: true,
				HasPending:       len(pending) > 0,
				HasCancelled:     len(cancelled) > 0,
				HasActivePending: hasActive,
			},
		})
		for _, a := range pending {
			feed = append(feed, Entry{Kind: EntryKindActivity, Activity: a})
		}
		for _, a := range cancelled {
			feed = append(feed, Entry{Kind: EntryKindActivity, Activity: a})
		}
	}

	currentLabel := ""
	haveSection := false
	for _, a := range completed {
		label := DayLabel(a.EventTime(), now)
		if !haveSection || label != currentLabel {
			feed = append(feed, Entry{
				Kind:   EntryKindHeader,
				Header: &Header{Title: label, Key: "header-" + label},
			})
			currentLabel = label
			haveSection = true
		}
		feed = append(feed, Entry{Kind: EntryKindActivity, Activity: a})
	}

	return feed
}

// IsStuck reports whether a pending activity has been in flight longer than
// the stuck threshold, relative to now.
func (g *Grouper) IsStuck(a *Activity, now time.Time) bool {
	t := a.EventTime()
	if t.IsZero() {
		return false
	}
	threshold := g.StuckThreshold
	if threshold <= 0 {
		threshold = DefaultStuckThreshold
	}
	return t.Before(now.Add(-threshold))
}

func (g *Grouper) hiddenInCleanView(a *Activity, now time.Time) bool {
	switch a.Status {
	case StatusPending:
		return g.IsStuck(a, now)
	case StatusCancelled:
		return true
	case StatusFailed, StatusExpired:
		// Abandoned attempts with nothing to show the user
		return !a.HasAmount()
	}
	return false
}

// DayLabel formats the section title for a completed activity: "Today",
// "Yesterday", or an absolute date. A zero time yields an empty label; the
// source data should always supply one valid time field, but a bad record
// must not break the whole feed.
func DayLabel(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(now.Location())
	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("02 Jan 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
