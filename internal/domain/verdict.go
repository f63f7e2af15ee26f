package domain

import (
	"fmt"
	"strings"
)

// Verdict classifies one letter of a guess against the target word
type Verdict string

const (
	VerdictExact   Verdict = "EXACT"
	VerdictPresent Verdict = "PRESENT"
	VerdictAbsent  Verdict = "ABSENT"
)

// Classify scores a guess against the target, one verdict per position.
// A letter off its position is marked present whenever it occurs anywhere
// in the target; matched occurrences are not consumed, so a guess letter
// repeated more often than in the target still scores present each time.
// Both strings must have the same length.
func Classify(guess, target string) ([]Verdict, error) {
	if len(guess) != len(target) {
		return nil, fmt.Errorf("%w: guess length %d does not match target length %d",
			ErrInvalidInput, len(guess), len(target))
	}

	verdicts := make([]Verdict, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == target[i]:
			verdicts[i] = VerdictExact
		case strings.IndexByte(target, guess[i]) >= 0:
			verdicts[i] = VerdictPresent
		default:
			verdicts[i] = VerdictAbsent
		}
	}

	return verdicts, nil
}
