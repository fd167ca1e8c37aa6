package homework

// Tracker remembers the last status seen for each homework and decides
// whether an observation is worth a notification. Memory is process-local
// and starts empty. Not safe for concurrent use.
type Tracker struct {
	seen      map[string]Status
	formatter *Formatter
}

// NewTracker creates a tracker that renders messages with f. A nil
// formatter uses the default templates.
func NewTracker(f *Formatter) *Tracker {
	if f == nil {
		f = NewFormatter(Templates{})
	}
	return &Tracker{
		seen:      make(map[string]Status),
		formatter: f,
	}
}

// Observe records the item's status and returns the notification text when
// the status is new for that name. First sightings count as a change.
// Unknown statuses are recorded like any other so repeats stay quiet.
func (t *Tracker) Observe(item Item) (string, bool) {
	prev, ok := t.seen[item.Name]
	if ok && prev == item.Status {
		return "", false
	}

	t.seen[item.Name] = item.Status
	return t.formatter.Change(item), true
}

// Status returns the last recorded status for name.
func (t *Tracker) Status(name string) (Status, bool) {
	s, ok := t.seen[name]
	return s, ok
}

// Len returns the number of tracked homeworks.
func (t *Tracker) Len() int {
	return len(t.seen)
}
