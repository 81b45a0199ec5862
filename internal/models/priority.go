package models

import (
	"fmt"
	"strings"
)

// Priority represents a task priority level
type Priority string

// Priority levels, lowest first
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is assigned to tasks created without one
const DefaultPriority = PriorityMedium

// Priorities lists every priority in ascending order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var priorityColors = map[Priority]string{
	PriorityLow:    "#22C55E",
	PriorityMedium: "#EAB308",
	PriorityHigh:   "#F97316",
	PriorityUrgent: "#EF4444",
}

// ParsePriority maps a priority string to a Priority, ignoring case and surrounding space
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: low, medium, high, urgent)", ErrUnknownPriority, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known priority levels
func (p Priority) Valid() bool {
	_, ok := priorityColors[p]
	return ok
}

// Color returns the display color of the priority
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return priorityColors[DefaultPriority]
}

// Label returns the capitalized name shown in forms ("Medium")
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}
