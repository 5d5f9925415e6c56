package lib

import "errors"

var (
	BadUserInputError = errors.New("bad user input")
)
