// Package dbg turns room ids into readable names for log lines and debug
// drawings. Names are handed out lazily, so the same id gets a different
// name in another run.
package dbg

import (
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = make(map[int]string)
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns the readable name for id, e.g. "BraveOtter".
func Name(id int) string {
	mu.Lock()
	defer mu.Unlock()

	if r, ok := memo[id]; ok {
		return r
	}
	r := title(petname.Adjective()) + title(petname.Name())
	memo[id] = r
	return r
}

// Reset forgets every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[int]string)
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
