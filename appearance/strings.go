// SPDX-License-Identifier: Unlicense OR MIT

package appearance

import "fmt"

func (s Style) String() string {
	switch s {
	case Standard:
		return "standard"
	case Wide:
		return "wide"
	case IconOnly:
		return "icononly"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if s > IconOnly {
		return nil, fmt.Errorf("appearance: unknown style %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	switch string(text) {
	case "standard":
		*s = Standard
	case "wide":
		*s = Wide
	case "icononly":
		*s = IconOnly
	default:
		return fmt.Errorf("appearance: unknown style %q", text)
	}
	return nil
}

func (s Scheme) String() string {
	switch s {
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if s > Light {
		return nil, fmt.Errorf("appearance: unknown scheme %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dark":
		*s = Dark
	case "light":
		*s = Light
	default:
		return fmt.Errorf("appearance: unknown scheme %q", text)
	}
	return nil
}

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Disabled:
		return "disabled"
	case Pressed:
		return "pressed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if s > Pressed {
		return nil, fmt.Errorf("appearance: unknown state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*s = Normal
	case "disabled":
		*s = Disabled
	case "pressed":
		*s = Pressed
	default:
		return fmt.Errorf("appearance: unknown state %q", text)
	}
	return nil
}
