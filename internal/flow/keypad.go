package flow

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Keypad key names besides the digits.
const (
	KeyDot       = "."
	KeyBackspace = "backspace"
)

// maxWholeDigits bounds manual entry to $9,999,999.
const maxWholeDigits = 7

// Keypad is the manual amount entry buffer.
type Keypad struct {
	text string
}

// Press applies one key and reports whether it changed the entry.
func (k *Keypad) Press(key string) bool {
	switch {
	case key == KeyBackspace:
		if k.text == "" {
			return false
		}
		k.text = k.text[:len(k.text)-1]
		return true
	case key == KeyDot:
		if strings.Contains(k.text, KeyDot) {
			return false
		}
		if k.text == "" {
			k.text = "0."
			return true
		}
		k.text += KeyDot
		return true
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		whole, frac, hasDot := strings.Cut(k.text, KeyDot)
		if hasDot {
			if len(frac) >= 2 {
				return false
			}
		} else if len(whole) >= maxWholeDigits {
			return false
		}
		if k.text == "0" {
			k.text = key
			return true
		}
		k.text += key
		return true
	}
	return false
}

// Text returns the raw entry, e.g. "12." while typing.
func (k Keypad) Text() string {
	return k.text
}

// Display renders the entry with a dollar sign, "$0" when empty.
func (k Keypad) Display() string {
	if k.text == "" {
		return "$0"
	}
	return "$" + k.text
}

// Amount parses the entry; an empty or partial entry is zero.
func (k Keypad) Amount() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSuffix(k.text, KeyDot))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Reset clears the entry.
func (k *Keypad) Reset() {
	k.text = ""
}
