// scope/state.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

type ConnectionState int

const (
	Disconnected ConnectionState = iota
	ConnectedDirect
	ConnectedProxy
	ConnectedLocal
	// Poisoned connections were refused by the server and will not be
	// retried.
	Poisoned
)

func (c ConnectionState) String() string {
	switch c {
	case Disconnected:
		return "disconnected"
	case ConnectedDirect:
		return "connected (direct)"
	case ConnectedProxy:
		return "connected (proxy)"
	case ConnectedLocal:
		return "connected (local)"
	case Poisoned:
		return "poisoned"
	default:
		return "unknown"
	}
}

func (c ConnectionState) Connected() bool {
	return c == ConnectedDirect || c == ConnectedProxy || c == ConnectedLocal
}

type ActivityState int

const (
	// ActivityNone means there is no aerodrome data to be active on.
	ActivityNone ActivityState = iota
	Observing
	Controlling
)

func (a ActivityState) String() string {
	switch a {
	case ActivityNone:
		return "none"
	case Observing:
		return "observing"
	case Controlling:
		return "controlling"
	default:
		return "unknown"
	}
}

type ClickType int

const (
	ClickPrimary ClickType = iota
	ClickAuxiliary
)

type Phase int

const (
	PhaseBackground Phase = iota
	PhaseBeforeTags
	PhaseAfterTags
	PhaseAfterLists
)

// Phases lists the render phases in the order the host runs them.
var Phases = []Phase{PhaseBackground, PhaseBeforeTags, PhaseAfterTags, PhaseAfterLists}

func (p Phase) String() string {
	switch p {
	case PhaseBackground:
		return "background"
	case PhaseBeforeTags:
		return "before tags"
	case PhaseAfterTags:
		return "after tags"
	case PhaseAfterLists:
		return "after lists"
	default:
		return "unknown"
	}
}
