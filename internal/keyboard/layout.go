// Package keyboard renders an on-screen QWERTY keyboard with finger hints.
package keyboard

import (
	"time"
	"unicode"
)

// Finger identifies which finger should strike a key.
type Finger int

// Fingers used for touch typing.
const (
	Pinky Finger = iota
	Ring
	Middle
	IndexLeft
	IndexRight
	Thumb
)

func (f Finger) String() string {
	switch f {
	case Pinky:
		return "pinky"
	case Ring:
		return "ring"
	case Middle:
		return "middle"
	case IndexLeft:
		return "left index"
	case IndexRight:
		return "right index"
	default:
		return "thumb"
	}
}

// KeyDef is one key cap. Char is zero for keys that never appear in text.
type KeyDef struct {
	Label  string
	Char   rune
	Width  int
	Finger Finger
}

func k(ch rune, finger Finger) KeyDef {
	return KeyDef{Label: string(ch), Char: ch, Width: 3, Finger: finger}
}

func special(label string, width int) KeyDef {
	return KeyDef{Label: label, Width: width, Finger: Pinky}
}

// Rows is the US QWERTY layout, top row first.
var Rows = [][]KeyDef{
	{
		k('`', Pinky), k('1', Pinky), k('2', Pinky), k('3', Ring), k('4', Ring), k('5', Ring),
		k('6', Ring), k('7', Ring), k('8', Ring), k('9', Ring), k('0', Ring), k('-', Pinky),
		k('=', Pinky), special("←", 4),
	},
	{
		special("⇥", 4), k('q', Pinky), k('w', Ring), k('e', Middle), k('r', IndexLeft), k('t', IndexLeft),
		k('y', IndexRight), k('u', IndexRight), k('i', Middle), k('o', Ring), k('p', Pinky), k('[', Pinky),
		k(']', Pinky), k('\\', Pinky),
	},
	{
		special("⇪", 6), k('a', Pinky), k('s', Ring), k('d', Middle), k('f', IndexLeft), k('g', IndexLeft),
		k('h', IndexRight), k('j', IndexRight), k('k', Middle), k('l', Ring), k(';', Pinky), k('\'', Pinky),
		special("↵", 5),
	},
	{
		special("⇧", 7), k('z', Pinky), k('x', Ring), k('c', Middle), k('v', IndexLeft), k('b', IndexLeft),
		k('n', IndexRight), k('m', IndexRight), k(',', Middle), k('.', Ring), k('/', Pinky), special("⇧", 8),
	},
	{
		{Label: "", Char: ' ', Width: 15, Finger: Thumb},
	},
}

var homeRow = map[rune]bool{'a': true, 's': true, 'd': true, 'f': true, 'j': true, 'k': true, 'l': true, ';': true}

var shifted = map[rune]rune{
	'~': '`', '!': '1', '@': '2', '#': '3', '$': '4', '%': '5', '^': '6', '&': '7', '*': '8',
	'(': '9', ')': '0', '_': '-', '+': '=', '{': '[', '}': ']', '|': '\\', ':': ';', '"': '\'',
	'<': ',', '>': '.', '?': '/',
}

// BaseKey maps a typed rune to the unshifted key cap that produces it.
func BaseKey(r rune) rune {
	if base, ok := shifted[r]; ok {
		return base
	}
	return unicode.ToLower(r)
}

// FingerFor returns the finger responsible for r.
func FingerFor(r rune) (Finger, bool) {
	base := BaseKey(r)
	for _, row := range Rows {
		for _, key := range row {
			if key.Char != 0 && key.Char == base {
				return key.Finger, true
			}
		}
	}
	return 0, false
}

// IsHomeRow reports whether r is typed from a home-row key.
func IsHomeRow(r rune) bool {
	return homeRow[BaseKey(r)]
}

// FlashDuration is how long a pressed key stays highlighted.
const FlashDuration = 120 * time.Millisecond

// Flash tracks the most recently pressed key.
type Flash struct {
	key rune
	at  time.Time
}

// Press records r as pressed at now.
func (f *Flash) Press(r rune, now time.Time) {
	f.key = BaseKey(r)
	f.at = now
}

// Active returns the pressed key while the flash lasts, or zero.
func (f *Flash) Active(now time.Time) rune {
	if f.key == 0 {
		return 0
	}
	if now.Sub(f.at) >= FlashDuration {
		f.key = 0
		return 0
	}
	return f.key
}
