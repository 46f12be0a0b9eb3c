package triangle

import (
	"strconv"
	"strings"
)

const (
	NoPathMessage = "No elements in the triangle. There is no path."
	resultPrefix  = "Minimal path is: "
)

// Format renders p as "a + b + c = sum", or NoPathMessage when p is empty.
func Format(p Path) string {
	if len(p) == 0 {
		return NoPathMessage
	}

	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return resultPrefix + strings.Join(parts, " + ") + " = " + strconv.FormatInt(p.Sum(), 10)
}
