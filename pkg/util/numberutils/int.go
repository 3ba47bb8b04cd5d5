package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithError converts the given string to an integer and returns any conversion error.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}
