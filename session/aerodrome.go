// session/aerodrome.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package session

import (
	"time"

	"github.com/stopbars/bars/config"
	"github.com/stopbars/bars/scope"
)

// Aerodrome is the live lighting state of one aerodrome: which profile is
// in use and whether each node is on. Every change bumps its generation
// so that screens showing it know to redraw.
type Aerodrome struct {
	Config *config.Aerodrome

	activity scope.ActivityState
	profile  int
	nodes    []bool
	// resets holds, for direct nodes that were switched off, the time at
	// which they come back on.
	resets map[int]time.Time

	generation uint64
}

func NewAerodrome(cfg *config.Aerodrome) *Aerodrome {
	a := &Aerodrome{
		Config:   cfg,
		activity: scope.Observing,
		nodes:    make([]bool, len(cfg.Nodes)),
		resets:   make(map[int]time.Time),
	}
	for i := range a.nodes {
		a.nodes[i] = true
	}
	a.applyProfile()
	return a
}

func (a *Aerodrome) ICAO() string {
	return a.Config.ICAO
}

func (a *Aerodrome) Generation() uint64 {
	return a.generation
}

func (a *Aerodrome) changed() {
	a.generation++
}

func (a *Aerodrome) Activity() scope.ActivityState {
	return a.activity
}

func (a *Aerodrome) SetActivity(s scope.ActivityState) {
	if s == scope.ActivityNone || s == a.activity {
		return
	}
	a.activity = s
	a.changed()
}

func (a *Aerodrome) ProfileNames() []string {
	var names []string
	for _, p := range a.Config.Profiles {
		names = append(names, p.Name)
	}
	return names
}

func (a *Aerodrome) Profile() int {
	return a.profile
}

// SetProfile switches to the i'th profile; out-of-range indices are
// ignored.
func (a *Aerodrome) SetProfile(i int) bool {
	if i < 0 || i >= len(a.Config.Profiles) || i == a.profile {
		return false
	}
	a.profile = i
	a.applyProfile()
	a.changed()
	return true
}

func (a *Aerodrome) condition(node int) config.NodeCondition {
	if a.profile >= len(a.Config.Profiles) {
		return config.NodeCondition{Kind: config.NodeFixed, Fixed: true}
	}
	conds := a.Config.Profiles[a.profile].Nodes
	if node >= len(conds) {
		return config.NodeCondition{Kind: config.NodeFixed, Fixed: true}
	}
	return conds[node]
}

// applyProfile forces fixed nodes to their fixed state and cancels any
// pending resets.
func (a *Aerodrome) applyProfile() {
	clear(a.resets)
	for i := range a.nodes {
		if c := a.condition(i); c.Kind == config.NodeFixed {
			a.nodes[i] = c.Fixed
		}
	}
}

// PresetNames returns the presets of the current profile.
func (a *Aerodrome) PresetNames() []string {
	if a.profile >= len(a.Config.Profiles) {
		return nil
	}
	var names []string
	for _, p := range a.Config.Profiles[a.profile].Presets {
		names = append(names, p.Name)
	}
	return names
}

// ApplyPreset applies the i'th preset of the current profile, switching
// each of its controllable nodes.
func (a *Aerodrome) ApplyPreset(i int, now time.Time) bool {
	if a.profile >= len(a.Config.Profiles) {
		return false
	}
	presets := a.Config.Profiles[a.profile].Presets
	if i < 0 || i >= len(presets) {
		return false
	}

	ch := false
	for _, pn := range presets[i].Nodes {
		ch = a.setNode(pn.Node, pn.On, now) || ch
	}
	if ch {
		a.changed()
	}
	return ch
}

func (a *Aerodrome) NodeOn(i int) bool {
	return i >= 0 && i < len(a.nodes) && a.nodes[i]
}

func (a *Aerodrome) Controllable(i int) bool {
	return i >= 0 && i < len(a.nodes) && a.condition(i).Controllable()
}

// SetNode switches a controllable node; it reports whether anything
// changed.
func (a *Aerodrome) SetNode(i int, on bool, now time.Time) bool {
	if a.setNode(i, on, now) {
		a.changed()
		return true
	}
	return false
}

func (a *Aerodrome) ToggleNode(i int, now time.Time) bool {
	return a.SetNode(i, !a.NodeOn(i), now)
}

func (a *Aerodrome) setNode(i int, on bool, now time.Time) bool {
	if !a.Controllable(i) || a.nodes[i] == on {
		return false
	}
	a.nodes[i] = on

	delete(a.resets, i)
	if c := a.condition(i); !on && c.Kind == config.NodeDirect && c.ResetSecs > 0 {
		a.resets[i] = now.Add(time.Duration(c.ResetSecs) * time.Second)
	}
	return true
}

// Tick switches back on any nodes whose reset time has passed.
func (a *Aerodrome) Tick(now time.Time) {
	ch := false
	for i, t := range a.resets {
		if !now.Before(t) {
			a.nodes[i] = true
			delete(a.resets, i)
			ch = true
		}
	}
	if ch {
		a.changed()
	}
}
