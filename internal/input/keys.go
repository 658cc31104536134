package input

import "strings"

// Command is the result of mapping one keystroke.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	TogglePause
	Quit
)

// Map translates a key name (as reported by the terminal layer) into a
// game command. Letters are case-insensitive. Anything outside the six
// recognized keys, arrows and other escape sequences included, maps to
// None and is ignored by the game.
func Map(key string) Command {
	switch strings.ToLower(key) {
	case "w":
		return MoveUp
	case "s":
		return MoveDown
	case "a":
		return MoveLeft
	case "d":
		return MoveRight
	case "p":
		return TogglePause
	case "q":
		return Quit
	default:
		return None
	}
}
