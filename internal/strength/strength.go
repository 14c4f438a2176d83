// Package strength rates passwords with the zxcvbn heuristics.
package strength

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// Level groups zxcvbn scores into three bands.
type Level string

const (
	LevelWeak   Level = "weak"
	LevelMedium Level = "medium"
	LevelStrong Level = "strong"
)

// Result is the rating of a single password.
type Result struct {
	Score int    `json:"score"`
	Level Level  `json:"level"`
	Label string `json:"label"`
}

// Evaluate scores password from 0 to 4. An empty password is weak with score 0.
func Evaluate(password string, userInputs ...string) Result {
	if password == "" {
		return resultFor(0)
	}
	match := zxcvbn.PasswordStrength(password, userInputs)
	return resultFor(match.Score)
}

func resultFor(score int) Result {
	switch {
	case score >= 4:
		return Result{Score: score, Level: LevelStrong, Label: "Strong"}
	case score >= 2:
		return Result{Score: score, Level: LevelMedium, Label: "Medium"}
	default:
		return Result{Score: score, Level: LevelWeak, Label: "Weak"}
	}
}
