// scope/dispatch.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"image"
	"strings"

	"github.com/stopbars/bars/platform"
)

// OnFunctionCall is the host's re-entry point for popup selections and
// edits: tag is an encoded TagFunction and text holds the contents of an
// edit popup.
func (s *Screen) OnFunctionCall(tag int32, text string, p image.Point, area image.Rectangle) {
	s.dispatch(DecodeTagFunction(tag), text, area)
}

// Pending returns the deferred function waiting for the next after-lists
// phase, if any.
func (s *Screen) Pending() (TagFunction, bool) {
	if s.pending == nil {
		return TagFunction{}, false
	}
	return s.pending.fn, true
}

func (s *Screen) dispatch(fn TagFunction, text string, area image.Rectangle) {
	s.lg.Debug("dispatch", "function", fn.String(), "text", text)

	switch fn.Kind {
	case TagNone:

	case TagOpenMenu:
		s.openMenu(area)

	case TagOpenEditAerodrome:
		icao, _ := s.client.Aerodrome()
		s.host.OpenPopupEdit(area, TagFunction{Kind: TagSubmitEditAerodrome}.Encode(), icao)

	case TagSubmitEditAerodrome:
		icao := normalizeAerodrome(text)
		s.client.SetAerodrome(icao)
		s.host.Settings().Set(SettingAerodrome, "Active aerodrome", icao)

	case TagToggleControlling:
		if s.client.Activity() == Observing {
			s.client.SetActivity(Controlling)
		} else {
			s.client.SetActivity(Observing)
		}

	case TagOpenSelectProfile, TagOpenSelectPreset, TagOpenSelectView:
		if fn.Payload == 0 {
			// The list is opened after the next frame is drawn so that it
			// reflects the client's state then.
			s.pending = &pendingFunction{fn: TagFunction{Kind: fn.Kind, Payload: 1}, area: area}
			break
		}
		s.openSelect(fn.Kind, area)

	case TagSubmitSelectProfile:
		s.client.SetProfile(int(fn.Payload))

	case TagSubmitSelectPreset:
		s.client.ApplyPreset(int(fn.Payload))

	case TagSubmitSelectView:
		s.client.SetView(int(fn.Payload))

	default:
		s.lg.Warnf("%s: unknown tag function", fn)
	}

	if s.client.BackgroundRefreshRequired() {
		s.host.RefreshMapContent()
	}
}

func (s *Screen) checked(c bool) platform.PopupCheck {
	if c {
		return platform.PopupChecked
	}
	return platform.PopupUnchecked
}

func (s *Screen) openMenu(area image.Rectangle) {
	h := s.host
	isController := h.IsController() || s.client.ConnectionState() == ConnectedLocal
	isControlling := s.client.Activity() == Controlling

	h.OpenPopupList(area, "BARS menu", 1)

	h.AddPopupListElement(platform.PopupItem{
		Label: "Active aerodrome",
		Tag:   TagFunction{Kind: TagOpenEditAerodrome}.Encode(),
	})

	control := TagFunction{Kind: TagNone}
	if isController {
		control.Kind = TagToggleControlling
	}
	h.AddPopupListElement(platform.PopupItem{
		Label:    "Control",
		Tag:      control.Encode(),
		Check:    s.checked(isControlling),
		Disabled: !isController,
	})

	h.AddPopupListElement(platform.PopupItem{
		Label: "Profiles",
		Tag:   TagFunction{Kind: TagOpenSelectProfile}.Encode(),
	})

	if len(s.client.Presets()) > 0 {
		presets := TagFunction{Kind: TagNone}
		if isControlling {
			presets.Kind = TagOpenSelectPreset
		}
		h.AddPopupListElement(platform.PopupItem{
			Label:    "Presets",
			Tag:      presets.Encode(),
			Disabled: !isControlling,
		})
	}

	if !s.geo {
		h.AddPopupListElement(platform.PopupItem{
			Label: "Views",
			Tag:   TagFunction{Kind: TagOpenSelectView}.Encode(),
		})
	}
}

func (s *Screen) openSelect(kind TagKind, area image.Rectangle) {
	h := s.host
	isControlling := s.client.Activity() == Controlling

	// Profile and preset items are disabled unless controlling.
	item := func(label string, submit TagKind, i int, check platform.PopupCheck, controlOnly bool) platform.PopupItem {
		fn := TagFunction{Kind: submit, Payload: uint32(i)}
		disabled := controlOnly && !isControlling
		if disabled {
			fn.Kind = TagNone
		}
		return platform.PopupItem{Label: label, Tag: fn.Encode(), Check: check, Disabled: disabled}
	}

	switch kind {
	case TagOpenSelectProfile:
		h.OpenPopupList(area, "Select profile", 1)
		current := s.client.Profile()
		for i, name := range s.client.Profiles() {
			h.AddPopupListElement(item(name, TagSubmitSelectProfile, i, s.checked(i == current), true))
		}

	case TagOpenSelectPreset:
		h.OpenPopupList(area, "Select preset", 1)
		for i, name := range s.client.Presets() {
			h.AddPopupListElement(item(name, TagSubmitSelectPreset, i, platform.PopupNoCheckbox, true))
		}

	case TagOpenSelectView:
		h.OpenPopupList(area, "Select view", 1)
		current := s.client.View()
		for i, name := range s.client.Views() {
			h.AddPopupListElement(item(name, TagSubmitSelectView, i, s.checked(i == current), false))
		}
	}
}

// normalizeAerodrome returns an ICAO code as entered or stored in the
// form aerodromes are tracked and configured under.
func normalizeAerodrome(icao string) string {
	return strings.ToUpper(strings.TrimSpace(icao))
}
