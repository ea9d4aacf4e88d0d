package chipedit

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrIconNotSingleRune is returned by WithIcon when the icon text is not
// exactly one rune.
var ErrIconNotSingleRune = errors.New("chip icon must be a single rune")

// Option configures a Model at construction time.
type Option func(*Model) error

// New creates a chip editor with the given separator. Construction is the
// only place the widget can fail; every operation after a successful New
// absorbs bad input by clamping.
func New(separator string, opts ...Option) (Model, error) {
	list, err := NewList(separator)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		list:   list,
		frame:  true,
	}
	for _, opt := range opts {
		if err := opt(&m); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// WithTexts sets the initial chips.
func WithTexts(texts ...string) Option {
	return func(m *Model) error {
		m.list.SetTexts(texts...)
		return nil
	}
}

// WithKeepEmpty keeps empty segments when splitting inserted text instead of
// dropping them.
func WithKeepEmpty() Option {
	return func(m *Model) error {
		m.list.SetKeepEmpty(true)
		return nil
	}
}

// WithIcon sets a leading icon rendered inside every chip. The icon must be
// a single rune.
func WithIcon(icon string) Option {
	return func(m *Model) error {
		if utf8.RuneCountInString(icon) != 1 {
			return fmt.Errorf("%q: %w", icon, ErrIconNotSingleRune)
		}
		r, _ := utf8.DecodeRuneInString(icon)
		m.icon = r
		return nil
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) error {
		m.Styles = s
		return nil
	}
}

// WithFrame toggles the border around the chip row. On by default.
func WithFrame(on bool) Option {
	return func(m *Model) error {
		m.frame = on
		return nil
	}
}

// WithWidth fixes the rendered width of the widget. Zero means natural width.
func WithWidth(w int) Option {
	return func(m *Model) error {
		m.width = w
		return nil
	}
}

// WithPlaceholder sets the text shown while the editor is empty.
func WithPlaceholder(text string) Option {
	return func(m *Model) error {
		m.placeholder = text
		return nil
	}
}
