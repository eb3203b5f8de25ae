package notify

import (
	"unicode/utf16"
	"unsafe"
)

// Shell_NotifyIconW message and flag values from shellapi.h.
const (
	nimAdd   = 0x00000000
	nifInfo  = 0x00000010
	nifGUID  = 0x00000020
	niifNone = 0x00000000
)

const (
	// InfoCapacity is the size of the balloon body buffer, terminator included.
	InfoCapacity = 256
	// InfoTitleCapacity is the size of the balloon title buffer, terminator included.
	InfoTitleCapacity = 64

	legacyCopyBound = 64
)

// GUID mirrors the Win32 GUID layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// notifyIconData mirrors NOTIFYICONDATAW. Go's field alignment matches the C
// layout on both 386 and amd64/arm64.
type notifyIconData struct {
	CbSize           uint32
	HWnd             uintptr
	UID              uint32
	UFlags           uint32
	UCallbackMessage uint32
	HIcon            uintptr
	SzTip            [128]uint16
	DwState          uint32
	DwStateMask      uint32
	SzInfo           [InfoCapacity]uint16
	UVersion         uint32 // union with uTimeout
	SzInfoTitle      [InfoTitleCapacity]uint16
	DwInfoFlags      uint32
	GuidItem         GUID
	HBalloonIcon     uintptr
}

// newNotifyIconData builds the descriptor for a balloon with the given body
// and title. Both strings are cut to fit their buffers with room left for
// the terminating NUL.
func newNotifyIconData(text, title string, legacyClamp bool) notifyIconData {
	data := notifyIconData{
		CbSize:      uint32(unsafe.Sizeof(notifyIconData{})),
		UFlags:      nifInfo | nifGUID,
		DwInfoFlags: niifNone,
	}
	copyBounded(data.SzInfo[:], utf16Prefix(text, InfoCapacity-1), legacyClamp)
	copyBounded(data.SzInfoTitle[:], utf16Prefix(title, InfoTitleCapacity-1), legacyClamp)
	return data
}

func copyBounded(dst, src []uint16, legacyClamp bool) {
	if legacyClamp && len(src) > legacyCopyBound {
		src = src[:legacyCopyBound]
	}
	copy(dst, src)
}

// utf16Prefix encodes s as UTF-16 and keeps at most max code units. A
// surrogate pair is never split: a high surrogate left without its partner
// at the cut is dropped.
func utf16Prefix(s string, max int) []uint16 {
	units := utf16.Encode([]rune(s))
	if len(units) <= max {
		return units
	}
	units = units[:max]
	if n := len(units); n > 0 && units[n-1] >= 0xD800 && units[n-1] <= 0xDBFF {
		units = units[:n-1]
	}
	return units
}

