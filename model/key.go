package model

import (
	"fmt"
	"strings"
)

// Key is a host independent key identity. Hosts translate their own key codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyR
	KeyN
	KeyEnter
	KeySpace
	KeyEscape
)

var keyNames = map[Key]string{
	KeyR:      "R",
	KeyN:      "N",
	KeyEnter:  "ENTER",
	KeySpace:  "SPACE",
	KeyEscape: "ESCAPE",
}

func (k Key) Name() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("N/A(%d)", k)
}

func ParseKey(name string) (Key, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == upper {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
