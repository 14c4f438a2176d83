package crypto

import (
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	similarChars   = "iIlL1oO0"
)

// RepairMode selects how missing character classes are spliced into a candidate.
type RepairMode int

const (
	// RepairOverwrite places each missing class at a uniformly random position.
	// A later repair may overwrite an earlier one, or the only character of a
	// class present in the draw; classes are not re-checked after placement.
	RepairOverwrite RepairMode = iota
	// RepairDistinct never overwrites a repaired position or the only
	// character of an enabled class, as long as such a position exists.
	RepairDistinct
)

// ParseRepairMode maps "overwrite" and "distinct" to a RepairMode.
func ParseRepairMode(s string) (RepairMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return RepairOverwrite, true
	case "distinct":
		return RepairDistinct, true
	}
	return RepairOverwrite, false
}

func (m RepairMode) String() string {
	if m == RepairDistinct {
		return "distinct"
	}
	return "overwrite"
}

// GeneratorOptions configures the password generator.
// Length is not range checked here; callers enforce their own bounds.
type GeneratorOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	ExcludeSimilar bool
	Repair         RepairMode
}

// DefaultOptions returns the defaults of the generator form: 20 characters,
// every class enabled, similar characters allowed.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    20,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

type charClass struct {
	chars   string
	enabled bool
}

// classes returns the four character classes in pool order.
func (o GeneratorOptions) classes() []charClass {
	return []charClass{
		{uppercaseChars, o.Uppercase},
		{lowercaseChars, o.Lowercase},
		{numberChars, o.Numbers},
		{symbolChars, o.Symbols},
	}
}

// Pool returns the characters eligible for the initial draw.
func (o GeneratorOptions) Pool() string {
	var pool strings.Builder
	for _, c := range o.classes() {
		if c.enabled {
			pool.WriteString(c.chars)
		}
	}

	p := pool.String()
	if o.ExcludeSimilar {
		for _, ch := range similarChars {
			p = strings.ReplaceAll(p, string(ch), "")
		}
	}

	if p == "" {
		p = lowercaseChars
	}
	return p
}

// Generate builds a password of exactly opts.Length characters. Characters are
// drawn from the pool with replacement. Every enabled class missing from that
// draw then gets one character from its full set; the missing classes and
// their characters are fixed before any of them is placed.
// Generate never fails: a negative length is treated as zero and an empty
// selection falls back to lowercase letters.
func Generate(opts GeneratorOptions, src Source) string {
	if opts.Length <= 0 {
		return ""
	}

	pool := opts.Pool()
	result := make([]byte, opts.Length)
	for i := range result {
		result[i] = pool[src.Intn(len(pool))]
	}

	var missing []byte
	for _, c := range opts.classes() {
		if c.enabled && !strings.ContainsAny(string(result), c.chars) {
			missing = append(missing, c.chars[src.Intn(len(c.chars))])
		}
	}

	repaired := make([]bool, len(result))
	for _, ch := range missing {
		var pos int
		if opts.Repair == RepairDistinct {
			pos = freePosition(result, repaired, opts, src)
		} else {
			pos = src.Intn(len(result))
		}
		result[pos] = ch
		repaired[pos] = true
	}

	return string(result)
}

// freePosition picks a position that holds neither a repaired character nor
// the sole character of an enabled class. With no such position it falls back
// to any position.
func freePosition(result []byte, repaired []bool, opts GeneratorOptions, src Source) int {
	protected := make([]bool, len(result))
	copy(protected, repaired)

	for _, c := range opts.classes() {
		if !c.enabled {
			continue
		}
		last, count := -1, 0
		for i, b := range result {
			if strings.IndexByte(c.chars, b) >= 0 {
				last = i
				count++
			}
		}
		if count == 1 {
			protected[last] = true
		}
	}

	free := make([]int, 0, len(result))
	for i, p := range protected {
		if !p {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return src.Intn(len(result))
	}
	return free[src.Intn(len(free))]
}

// MeetsCriteria reports whether password is at least opts.Length long, has one
// character of every enabled class and, if requested, no similar characters.
func MeetsCriteria(password string, opts GeneratorOptions) bool {
	if len(password) < opts.Length {
		return false
	}

	for _, c := range opts.classes() {
		if c.enabled && !strings.ContainsAny(password, c.chars) {
			return false
		}
	}

	if opts.ExcludeSimilar && strings.ContainsAny(password, similarChars) {
		return false
	}

	return true
}
