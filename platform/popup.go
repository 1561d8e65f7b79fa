// platform/popup.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"image"
)

type PopupCheck int

const (
	PopupNoCheckbox PopupCheck = iota
	PopupUnchecked
	PopupChecked
)

// PopupItem is a single entry of a host-rendered popup list. Tag is the
// encoded command the host hands back through the function-call entry
// point when the item is selected.
type PopupItem struct {
	Label    string
	Tag      int32
	Check    PopupCheck
	Disabled bool
}

type PopupKind int

const (
	PopupList PopupKind = iota
	PopupEdit
)

// Popup records a popup the host has been asked to show.
type Popup struct {
	Kind    PopupKind
	Title   string
	Area    image.Rectangle
	Columns int
	Items   []PopupItem

	// Edit popups only: the initial text and the tag to submit with.
	Text string
	Tag  int32
}

// Item returns the list item with the given label, if any.
func (p *Popup) Item(label string) (PopupItem, bool) {
	for _, it := range p.Items {
		if it.Label == label {
			return it, true
		}
	}
	return PopupItem{}, false
}

func (p *Popup) Labels() []string {
	var l []string
	for _, it := range p.Items {
		l = append(l, it.Label)
	}
	return l
}
