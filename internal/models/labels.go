package models

/*
Tag and priority vocabularies. Both sets are closed: handlers and the
categorizer only ever emit values declared here.
*/

// Tag is a category label attached to a text.
type Tag string

const (
	TagFinance Tag = "finance"
	TagUni     Tag = "uni"
	TagErrand  Tag = "errand"
	TagMisc    Tag = "misc"
)

// AllTags lists the label set in rule-evaluation order, fallback last.
func AllTags() []Tag {
	return []Tag{TagFinance, TagUni, TagErrand, TagMisc}
}

// Valid reports whether t belongs to the label set.
func (t Tag) Valid() bool {
	for _, known := range AllTags() {
		if t == known {
			return true
		}
	}
	return false
}

// Priority is an ordinal urgency level.
type Priority string

// LOW and HIGH are part of the vocabulary but no rule produces them yet.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var priorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Label returns the human readable name, or the raw value for unknown priorities.
func (p Priority) Label() string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return string(p)
}

// Rank orders priorities from LOW (0) to URGENT (3). Unknown values rank -1.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	}
	return -1
}
