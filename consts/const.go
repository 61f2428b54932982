package consts

import "time"

const (
	ModeLocal     = "local"
	ModeTcp       = "tcp"
	ModeWebsocket = "ws"

	DefaultAddr  = ":9999"
	DefaultSeats = 4
	MinSeats     = 2
	MaxSeats     = 4
	HandSize     = 13

	// DecisionTimeout bounds a single networked decision. Local play waits forever.
	DecisionTimeout = 60 * time.Second
)

// Prompts and replies written to a human seat.
const (
	PromptDiscard = "Discard tile: "
	PromptTsumo   = "TSUMO? (Y/n)"
	PromptRon     = "Ron? (Y/n)"

	RejectNotInHand = "selected tile is not part of your hand. choose another."
	RejectInvalid   = "invalid tile '%s'. choose another."
)

// NegativeAnswers are the only tokens that decline a win prompt.
var NegativeAnswers = map[string]bool{
	"n":  true,
	"no": true,
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsInputExhausted  = NewErr(2, true, "Input exhausted. ")
	ErrorsTimeout         = NewErr(3, false, "Timeout. ")
	ErrorsTooManyAttempts = NewErr(4, true, "Too many attempts. ")
	ErrorsTileNotInHand   = NewErr(5, true, "Tile not in hand. ")
	ErrorsSeatsInvalid    = NewErr(6, true, "Seats invalid. ")
	ErrorsModeInvalid     = NewErr(7, true, "Mode invalid. ")
	ErrorsWallExhausted   = NewErr(8, false, "Wall exhausted. ")
	ErrorsNameTaken       = NewErr(9, true, "Name already seated. ")
)
