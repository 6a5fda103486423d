package activity

import (
	"reflect"
	"strconv"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// mkActivity builds an activity whose effective event time is age before testNow.
func mkActivity(id string, status Status, age time.Duration, amount string) *Activity {
	return &Activity{
		ID:        id,
		Type:      TypeDeposit,
		Status:    status,
		Amount:    amount,
		Symbol:    "USDC",
		Timestamp: strconv.FormatInt(testNow.Add(-age).Unix(), 10),
		CreatedAt: testNow.Add(-age).Format(time.RFC3339),
	}
}

func itemIDs(feed []Entry) []string {
	var ids []string
	for _, e := range feed {
		if e.Kind == EntryKindActivity {
			ids = append(ids, e.Activity.ID)
		}
	}
	return ids
}

func headerTitles(feed []Entry) []string {
	var titles []string
	for _, e := range feed {
		if e.Kind == EntryKindHeader {
			titles = append(titles, e.Header.Title)
		}
	}
	return titles
}

func TestGroupAt_EmptyInput(t *testing.T) {
	g := NewGrouper(0)
	feed := g.GroupAt(nil, false, testNow)
	if len(feed) != 0 {
		t.Errorf("expected empty feed, got %d entries", len(feed))
	}
}

func TestGroupAt_SingleTodaySuccess(t *testing.T) {
	g := NewGrouper(0)
	a := &Activity{ID: "a1", Type: TypeDeposit, Status: StatusSuccess, Amount: "10", Symbol: "USDC", CreatedAt: testNow.Format(time.RFC3339)}

	feed := g.GroupAt([]*Activity{a}, false, testNow)

	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	if feed[0].Kind != EntryKindHeader || feed[0].Header.Title != "Today" {
		t.Errorf("expected Today header first, got %+v", feed[0])
	}
	if feed[1].Kind != EntryKindActivity || feed[1].Activity.ID != "a1" {
		t.Errorf("expected activity item second, got %+v", feed[1])
	}
}

func TestGroupAt_PendingAndTodayCompleted(t *testing.T) {
	g := NewGrouper(0)
	pending := mkActivity("p1", StatusPending, 10*time.Minute, "5")
	done := mkActivity("s1", StatusSuccess, 2*time.Hour, "10")

	feed := g.GroupAt([]*Activity{done, pending}, false, testNow)

	if len(feed) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(feed))
	}
	h := feed[0].Header
	if h == nil || h.Title != "Pending activity" || !h.IsPendingSection {
		t.Fatalf("expected pending header first, got %+v", feed[0])
	}
	if !h.HasActivePending {
		t.Error("expected HasActivePending for a fresh pending activity")
	}
	if feed[1].Activity == nil || feed[1].Activity.ID != "p1" {
		t.Errorf("expected pending item after pending header, got %+v", feed[1])
	}
	if feed[2].Header == nil || feed[2].Header.Title != "Today" {
		t.Errorf("expected Today header, got %+v", feed[2])
	}
	if feed[3].Activity == nil || feed[3].Activity.ID != "s1" {
		t.Errorf("expected completed item last, got %+v", feed[3])
	}
}

func TestGroupAt_TwoDaySpread(t *testing.T) {
	g := NewGrouper(0)
	today := mkActivity("t1", StatusSuccess, 1*time.Hour, "1")
	yesterday := mkActivity("y1", StatusSuccess, 26*time.Hour, "2")
	old := mkActivity("o1", StatusSuccess, 10*24*time.Hour, "3")

	feed := g.GroupAt([]*Activity{old, today, yesterday}, false, testNow)

	wantTitles := []string{"Today", "Yesterday", testNow.Add(-10 * 24 * time.Hour).Format("02 Jan 2006")}
	if got := headerTitles(feed); !reflect.DeepEqual(got, wantTitles) {
		t.Errorf("header titles = %v, want %v", got, wantTitles)
	}
	if got := itemIDs(feed); !reflect.DeepEqual(got, []string{"t1", "y1", "o1"}) {
		t.Errorf("item order = %v, want [t1 y1 o1]", got)
	}
	if len(feed) != 6 {
		t.Errorf("expected 6 entries (3 headers, 3 items), got %d", len(feed))
	}
}

func TestGroupAt_CleanViewFilter(t *testing.T) {
	tests := []struct {
		name     string
		activity *Activity
		kept     bool
	}{
		{"stuck pending dropped", mkActivity("a", StatusPending, 25*time.Hour, "1"), false},
		{"fresh pending kept", mkActivity("b", StatusPending, 1*time.Hour, "1"), true},
		{"cancelled always dropped", mkActivity("c", StatusCancelled, 5*time.Minute, "9"), false},
		{"failed zero amount dropped", mkActivity("d", StatusFailed, time.Hour, "0"), false},
		{"failed missing amount dropped", mkActivity("e", StatusFailed, time.Hour, ""), false},
		{"failed with amount kept", mkActivity("f", StatusFailed, time.Hour, "12.50"), true},
		{"expired zero amount dropped", mkActivity("g", StatusExpired, time.Hour, "0.00"), false},
		{"expired with amount kept", mkActivity("h", StatusExpired, time.Hour, "3"), true},
		{"processing zero amount kept", mkActivity("i", StatusProcessing, time.Hour, "0"), true},
		{"refunded kept", mkActivity("j", StatusRefunded, time.Hour, "2"), true},
	}

	g := NewGrouper(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := g.GroupAt([]*Activity{tt.activity}, false, testNow)
			got := len(itemIDs(feed)) == 1
			if got != tt.kept {
				t.Errorf("kept = %v, want %v", got, tt.kept)
			}
		})
	}
}

func TestGroupAt_AdminViewPassthrough(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{
		mkActivity("a", StatusPending, 30*time.Hour, "1"), // stuck
		mkActivity("b", StatusCancelled, time.Hour, "0"),
		mkActivity("c", StatusFailed, time.Hour, "0"),
		mkActivity("d", StatusSuccess, time.Hour, "5"),
	}

	feed := g.GroupAt(input, true, testNow)

	ids := itemIDs(feed)
	if len(ids) != len(input) {
		t.Fatalf("admin view lost records: got %d items, want %d", len(ids), len(input))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	for _, a := range input {
		if !seen[a.ID] {
			t.Errorf("activity %s missing from admin view", a.ID)
		}
	}
}

func TestGroupAt_Idempotence(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{
		mkActivity("a", StatusPending, 10*time.Minute, "1"),
		mkActivity("b", StatusSuccess, 2*time.Hour, "2"),
		mkActivity("c", StatusSuccess, 30*time.Hour, "3"),
		mkActivity("d", StatusCancelled, time.Hour, "4"),
	}

	first := g.GroupAt(input, false, testNow)
	second := g.GroupAt(input, false, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Error("grouping is not idempotent for identical inputs and clock")
	}
}

func TestGroupAt_OrderingInvariant(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{
		mkActivity("old", StatusSuccess, 72*time.Hour, "1"),
		mkActivity("today1", StatusSuccess, time.Hour, "1"),
		mkActivity("pending", StatusPending, 5*time.Minute, "1"),
		mkActivity("yesterday", StatusSuccess, 26*time.Hour, "1"),
		mkActivity("today2", StatusSuccess, 2*time.Hour, "1"),
	}

	feed := g.GroupAt(input, false, testNow)

	if feed[0].Kind != EntryKindHeader || !feed[0].Header.IsPendingSection {
		t.Fatal("pending section must be the first entry when present")
	}

	var lastTitle string
	var lastItemTime time.Time
	sawDateHeader := false
	for i, e := range feed[2:] {
		if e.Kind == EntryKindHeader {
			if e.Header.Title == lastTitle {
				t.Errorf("duplicate adjacent header %q at entry %d", e.Header.Title, i+2)
			}
			lastTitle = e.Header.Title
			sawDateHeader = true
			continue
		}
		if !sawDateHeader {
			t.Fatalf("item %s before any date header", e.Activity.ID)
		}
		et := e.Activity.EventTime()
		if !lastItemTime.IsZero() && et.After(lastItemTime) {
			t.Errorf("completed items out of order at %s", e.Activity.ID)
		}
		lastItemTime = et
	}
}

func TestGroupAt_PartitionCompleteness(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{
		mkActivity("a", StatusPending, 10*time.Minute, "1"),
		mkActivity("b", StatusSuccess, time.Hour, "2"),
		mkActivity("c", StatusProcessing, 2*time.Hour, "3"),
		mkActivity("d", StatusRefunded, 3*time.Hour, "4"),
	}

	feed := g.GroupAt(input, false, testNow)

	counts := map[string]int{}
	for _, id := range itemIDs(feed) {
		counts[id]++
	}
	for _, a := range input {
		if counts[a.ID] != 1 {
			t.Errorf("activity %s appears %d times, want exactly once", a.ID, counts[a.ID])
		}
	}
}

func TestGroupAt_PendingSectionOrder(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{
		mkActivity("cancel1", StatusCancelled, 30*time.Minute, "1"),
		mkActivity("pend1", StatusPending, 2*time.Hour, "1"),
		mkActivity("pend2", StatusPending, 10*time.Minute, "1"),
	}

	feed := g.GroupAt(input, true, testNow)

	// Pending entries come before cancelled ones, each bucket newest first.
	want := []string{"pend2", "pend1", "cancel1"}
	if got := itemIDs(feed); !reflect.DeepEqual(got, want) {
		t.Errorf("pending section order = %v, want %v", got, want)
	}
}

func TestGroupAt_StuckPendingOnly_NoActiveFlag(t *testing.T) {
	g := NewGrouper(0)
	input := []*Activity{mkActivity("a", StatusPending, 48*time.Hour, "1")}

	feed := g.GroupAt(input, true, testNow)

	if len(feed) == 0 || feed[0].Header == nil {
		t.Fatal("expected pending header")
	}
	if feed[0].Header.HasActivePending {
		t.Error("HasActivePending should be false when every pending entry is stuck")
	}
}

func TestGroupAt_CustomStuckThreshold(t *testing.T) {
	g := NewGrouper(time.Hour)
	twoHoursOld := mkActivity("a", StatusPending, 2*time.Hour, "1")

	feed := g.GroupAt([]*Activity{twoHoursOld}, false, testNow)
	if len(itemIDs(feed)) != 0 {
		t.Error("pending older than the configured threshold should be hidden in clean view")
	}

	feed = g.GroupAt([]*Activity{twoHoursOld}, true, testNow)
	if len(itemIDs(feed)) != 1 {
		t.Error("admin view must still show stuck pending activity")
	}
}

func TestGroupAt_MalformedTimeFallsBackToEmptyLabel(t *testing.T) {
	g := NewGrouper(0)
	bad := &Activity{ID: "a", Type: TypeSend, Status: StatusSuccess, Amount: "1", Timestamp: "not-a-number", CreatedAt: "garbage"}

	feed := g.GroupAt([]*Activity{bad}, false, testNow)

	if len(feed) != 2 {
		t.Fatalf("expected header+item, got %d entries", len(feed))
	}
	if feed[0].Header.Title != "" {
		t.Errorf("expected empty label for unparseable time, got %q", feed[0].Header.Title)
	}
}

func TestIsStuck(t *testing.T) {
	g := NewGrouper(0)
	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"an hour old", time.Hour, false},
		{"just under threshold", 24*time.Hour - time.Minute, false},
		{"just over threshold", 24*time.Hour + time.Minute, true},
		{"days old", 96 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mkActivity("x", StatusPending, tt.age, "1")
			if got := g.IsStuck(a, testNow); got != tt.want {
				t.Errorf("IsStuck(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", testNow.Add(-3 * time.Hour), "Today"},
		{"previous day", testNow.Add(-24 * time.Hour), "Yesterday"},
		{"absolute date", time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), "02 Jan 2025"},
		{"zero time", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayLabel(tt.t, testNow); got != tt.want {
				t.Errorf("DayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
