package runecursor

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// EOFChar возвращают операции просмотра, когда символов больше не осталось.
// U+FFFF is a Unicode noncharacter: it never occurs in valid interchange
// text, so the value is always distinguishable from real content. Callers
// that feed text containing noncharacters are outside the contract.
const EOFChar rune = '\uFFFF'

// Cursor представляет собой позицию в тексте, по рунам.
//
// The cursor holds the source string by value, which in Go shares the
// backing bytes: the text is never copied and never mutated. Lookahead
// decodes at the current offset without advancing it; only Bump, BumpTwo,
// Eat and SkipWhile move the cursor. Bump reports exhaustion via its ok
// result; every other lookup returns EOFChar instead.
//
// A Cursor is not safe for concurrent mutation. Independent cursors over
// the same string are fine.
type Cursor struct {
	src string
	off uint32
	// limit is the exclusive upper bound for off; equals len(src).
	limit uint32
}

// New creates a cursor positioned at the start of src.
func New(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{
		src:   src,
		off:   0,
		limit: limit,
	}
}

// runeAt декодирует руну по смещению off; (EOFChar, 0) в конце текста.
func (c *Cursor) runeAt(off uint32) (rune, uint32) {
	if off >= c.limit {
		return EOFChar, 0
	}
	b := c.src[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRuneInString(c.src[off:])
	return r, uint32(sz)
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// BytePos is the byte offset of the next unconsumed character, i.e. how
// many bytes of the source have been consumed so far. Multi-byte
// characters advance it by their encoded size, not by one.
func (c *Cursor) BytePos() uint32 {
	return c.off
}

// Peek читает текущую руну, не сдвигая курсор; EOFChar в конце.
func (c *Cursor) Peek() rune {
	r, _ := c.runeAt(c.off)
	return r
}

// PeekSecond читает руну через одну, не сдвигая курсор; EOFChar, если
// осталось меньше двух символов.
func (c *Cursor) PeekSecond() rune {
	_, sz := c.runeAt(c.off)
	if sz == 0 {
		return EOFChar
	}
	r, _ := c.runeAt(c.off + sz)
	return r
}

// Bump перемещает курсор на одну руну вперед и возвращает её.
// At end of input it returns (EOFChar, false) and does not move.
func (c *Cursor) Bump() (rune, bool) {
	r, sz := c.runeAt(c.off)
	if sz == 0 {
		return EOFChar, false
	}
	c.off += sz
	return r, true
}

// BumpTwo перемещает курсор на две руны вперед и возвращает обе;
// недостающие символы приходят как EOFChar.
func (c *Cursor) BumpTwo() (rune, rune) {
	r0, _ := c.Bump()
	r1, _ := c.Bump()
	return r0, r1
}

// Eat consumes the next character if it equals r.
func (c *Cursor) Eat(r rune) bool {
	got, sz := c.runeAt(c.off)
	if sz != 0 && got == r {
		c.off += sz
		return true
	}
	return false
}

// SkipWhile пропускает руны, пока pred возвращает true.
//
// The first non-matching character is not consumed, and the run always
// stops at end of input: pred is never called with EOFChar, so a
// predicate that would accept it cannot overrun.
func (c *Cursor) SkipWhile(pred func(rune) bool) {
	for {
		r, sz := c.runeAt(c.off)
		if sz == 0 || !pred(r) {
			return
		}
		c.off += sz
	}
}

// Rest возвращает непрочитанный остаток текста.
func (c *Cursor) Rest() string {
	return c.src[c.off:]
}
