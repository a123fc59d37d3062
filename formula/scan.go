package formula

import "unicode"

// Connective and constant runes of the formula alphabet. Atoms are single
// letters; everything else is one of these.
const (
	runeNot     = '¬'
	runeAnd     = '∧'
	runeOr      = '∨'
	runeImplies = '→'
	runeIff     = '↔'
	runeBottom  = '⊥'
	runeTop     = '⊤'
)

var opRank = map[rune]int{
	runeNot:     rankNot,
	runeAnd:     rankAnd,
	runeOr:      rankOr,
	runeImplies: rankImplies,
	runeIff:     rankIff,
}

// isOperand reports whether r stands for a complete operand on its own:
// an atom letter or one of the constants ⊥ and ⊤.
func isOperand(r rune) bool {
	return unicode.IsLetter(r) || r == runeBottom || r == runeTop
}

func isBinary(r rune) bool {
	return r == runeAnd || r == runeOr || r == runeImplies || r == runeIff
}

// Tokenize splits text into one token per symbol, dropping whitespace.
// Every remaining rune is a token: atoms, connectives, constants and
// parentheses all occupy exactly one rune.
func Tokenize(text string) []rune {
	tokens := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, r)
	}
	return tokens
}

// Scanner states. Four of them expect an operand next and share their
// transitions; stateOperand is the only accepting state.
type scanState int

const (
	stateStart scanState = iota
	stateNegation
	stateOperand // after an atom, constant or closing parenthesis
	stateOperator
	stateOpen
)

// IsWellFormed reports whether tokens spell a well-formed formula. It runs
// the transition machine over the token stream while tracking parenthesis
// balance; the stream is accepted when it ends in stateOperand with every
// parenthesis closed. Runes outside the alphabet reject immediately.
func IsWellFormed(tokens []rune) bool {
	state := stateStart
	depth := 0
	for _, r := range tokens {
		switch state {
		case stateStart, stateNegation, stateOperator, stateOpen:
			switch {
			case isOperand(r):
				state = stateOperand
			case r == runeNot:
				state = stateNegation
			case r == '(':
				state = stateOpen
				depth++
			default:
				return false
			}
		case stateOperand:
			switch {
			case isBinary(r):
				state = stateOperator
			case r == ')':
				if depth == 0 {
					return false
				}
				depth--
			default:
				return false
			}
		}
	}
	return state == stateOperand && depth == 0
}
