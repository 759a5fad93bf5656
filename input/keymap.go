package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/event"
)

// Rune aliases for keys that can't be written as a single character in TOML values
var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap maps key presses to actions
type Keymap struct {
	runes   map[rune]Action
	special map[tcell.Key]Action
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		runes: map[rune]Action{
			' ': ActionToggle,
			's': ActionStart,
			'p': ActionPause,
			'r': ActionReset,
			'+': ActionAddMinute,
			'=': ActionAddMinute,
			'-': ActionSubMinute,
			']': ActionAddFiveMinutes,
			'[': ActionSubFiveMinutes,
			'>': ActionAddSecond,
			'<': ActionSubSecond,
			'c': ActionNextColor,
			'x': ActionRandomColor,
			'w': ActionRainbow,
			'1': ActionShapeClassic,
			'2': ActionShapeModern,
			'3': ActionShapeSlim,
			'4': ActionShapeWide,
			'm': ActionMorphToggle,
			'h': ActionAddHour,
			'H': ActionSubHour,
			't': ActionPanelToggle,
			'v': ActionMuteToggle,
			'q': ActionQuit,
		},
		special: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEnter:  ActionToggle,
			tcell.KeyRight:  ActionAddFiveSeconds,
			tcell.KeyLeft:   ActionSubFiveSeconds,
			tcell.KeyUp:     ActionAddFifteenSeconds,
			tcell.KeyDown:   ActionSubFifteenSeconds,
			tcell.KeyPgUp:   ActionAddFifteenMinutes,
			tcell.KeyPgDn:   ActionSubFifteenMinutes,
		},
	}
}

// Override rebinds keys from an action-name to key-string map
// Returns error on unknown action names or keys that are not a single rune
func (k *Keymap) Override(bindings map[string]string) error {
	for name, key := range bindings {
		action, ok := LookupAction(name)
		if !ok {
			return fmt.Errorf("keys: unknown action %q", name)
		}
		r, err := parseKey(key)
		if err != nil {
			return fmt.Errorf("keys.%s: %w", name, err)
		}

		// A key binds to one action; previous bindings of the action stay
		if action == ActionNone {
			delete(k.runes, r)
			continue
		}
		k.runes[r] = action
	}
	return nil
}

// Resolve maps a key event to an action
func (k *Keymap) Resolve(ev *tcell.EventKey) Action {
	return k.ResolveKey(ev.Key(), ev.Rune())
}

// ResolveKey maps a key code and rune to an action; r is used only for KeyRune
func (k *Keymap) ResolveKey(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return k.runes[r]
	}
	return k.special[key]
}

// Dispatch pushes the event requested by a key press
// Returns the resolved action
func (k *Keymap) Dispatch(ev *tcell.EventKey, q *event.EventQueue) Action {
	action := k.Resolve(ev)
	action.Push(q)
	return action
}

func parseKey(s string) (rune, error) {
	if r, ok := runeAliases[s]; ok {
		return r, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("invalid key %q, expected a single character", s)
	}
	return r, nil
}
