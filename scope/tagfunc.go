// scope/tagfunc.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"fmt"
	"image"
)

type TagKind uint8

const (
	TagNone TagKind = iota
	TagOpenMenu
	TagOpenEditAerodrome
	TagSubmitEditAerodrome
	TagToggleControlling
	TagOpenSelectProfile
	TagSubmitSelectProfile
	TagOpenSelectPreset
	TagSubmitSelectPreset
	TagOpenSelectView
	TagSubmitSelectView
	tagKindCount
)

var tagKindNames = [...]string{
	TagNone:                "None",
	TagOpenMenu:            "OpenMenu",
	TagOpenEditAerodrome:   "OpenEditAerodrome",
	TagSubmitEditAerodrome: "SubmitEditAerodrome",
	TagToggleControlling:   "ToggleControlling",
	TagOpenSelectProfile:   "OpenSelectProfile",
	TagSubmitSelectProfile: "SubmitSelectProfile",
	TagOpenSelectPreset:    "OpenSelectPreset",
	TagSubmitSelectPreset:  "SubmitSelectPreset",
	TagOpenSelectView:      "OpenSelectView",
	TagSubmitSelectView:    "SubmitSelectView",
}

func (k TagKind) String() string {
	if k < tagKindCount {
		return tagKindNames[k]
	}
	return fmt.Sprintf("TagKind(%d)", uint8(k))
}

// MaxTagPayload is the largest payload that survives encoding.
const MaxTagPayload = 1<<20 - 1

// TagFunction is a command carried through the host's popup and click
// callbacks. The meaning of Payload depends on Kind: a list index for the
// Submit* kinds, or 0/1 for the two phases of the OpenSelect* kinds.
type TagFunction struct {
	Kind    TagKind
	Payload uint32
}

// Encode packs the function into the single integer the host passes
// around: the kind in the low 8 bits and the payload in the next 20.
func (f TagFunction) Encode() int32 {
	return int32(uint32(f.Kind) | (f.Payload&MaxTagPayload)<<8)
}

func DecodeTagFunction(v int32) TagFunction {
	u := uint32(v)
	return TagFunction{
		Kind:    TagKind(u & 0xff),
		Payload: (u >> 8) & MaxTagPayload,
	}
}

func (f TagFunction) String() string {
	return fmt.Sprintf("%s(%d)", f.Kind, f.Payload)
}

// pendingFunction is a deferred OpenSelect* command, already promoted to
// its second phase, and the area its popup should open over.
type pendingFunction struct {
	fn   TagFunction
	area image.Rectangle
}
