package input

// KeyCode identifies the physical key of a press.
type KeyCode int

// Key codes.
const (
	KeyOther KeyCode = iota
	KeyRune
	KeySpace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

// Modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Key is one accepted key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// RuneKey builds a key for a printable rune. A space becomes KeySpace.
func RuneKey(r rune, mods Modifiers) Key {
	if r == ' ' {
		return Key{Code: KeySpace, Rune: ' ', Mods: mods}
	}
	return Key{Code: KeyRune, Rune: r, Mods: mods}
}

// CodeKey builds a key for a non-printable key.
func CodeKey(code KeyCode, mods Modifiers) Key {
	return Key{Code: code, Mods: mods}
}
