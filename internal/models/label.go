package models

// Labels are plain string tags on a ticket. The slice may hold the same
// tag more than once: appending never dedupes.

// HasLabel reports whether the ticket carries the label at least once
func (t Ticket) HasLabel(label string) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// withoutLabel returns labels minus every occurrence of label.
// A nil input stays nil.
func withoutLabel(labels []string, label string) []string {
	if labels == nil {
		return nil
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != label {
			out = append(out, l)
		}
	}
	return out
}

// AddLabel appends the label
func (t *Ticket) AddLabel(label string) {
	t.Labels = append(t.Labels, label)
}

// RemoveLabel drops every occurrence of label
func (t *Ticket) RemoveLabel(label string) {
	t.Labels = withoutLabel(t.Labels, label)
	if t.Labels == nil {
		t.Labels = []string{}
	}
}

// DefaultLabels are the common tags the ticket form offers for picking
var DefaultLabels = []string{"Strategy", "Design", "UI", "Dev", "Meeting", "Bug", "Urgent"}
