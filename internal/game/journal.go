package game

import "unicode/utf8"

// Journal collects clues. The newest clue is typed out one character at a
// time; older ones are always shown in full.
type Journal struct {
	clues []string
	typed int // runes of the newest clue shown so far
}

// Add appends a clue and starts typing it out.
func (j *Journal) Add(clue string) {
	j.clues = append(j.clues, clue)
	j.typed = 0
}

// Len returns the number of clues.
func (j *Journal) Len() int { return len(j.clues) }

// Clues returns every clue in full, oldest first.
func (j *Journal) Clues() []string { return j.clues }

// Typing reports whether the newest clue is still being typed out.
func (j *Journal) Typing() bool {
	return len(j.clues) > 0 && j.typed < utf8.RuneCountInString(j.clues[len(j.clues)-1])
}

// Advance reveals one more character and reports whether more remain.
func (j *Journal) Advance() bool {
	if j.Typing() {
		j.typed++
	}
	return j.Typing()
}

// Finish shows the newest clue in full.
func (j *Journal) Finish() {
	if len(j.clues) > 0 {
		j.typed = utf8.RuneCountInString(j.clues[len(j.clues)-1])
	}
}

// Visible returns the clues as currently shown.
func (j *Journal) Visible() []string {
	if len(j.clues) == 0 {
		return nil
	}
	out := make([]string, len(j.clues))
	copy(out, j.clues)
	last := []rune(out[len(out)-1])
	out[len(out)-1] = string(last[:min(j.typed, len(last))])
	return out
}
