// Package runecursor is a minimal character cursor for building lexers
// and tokenizers on top of. It walks the runes of a string with one- and
// two-character lookahead and tracks the byte offset of the next
// unconsumed character, nothing more: no tokens, no grammar, no I/O.
//
// Типичный цикл сканера:
//
//	cur := runecursor.New("123 foobar竜<!>")
//
//	numStart := cur.BytePos()
//	cur.SkipWhile(func(r rune) bool { return r >= '0' && r <= '9' })
//	numEnd := cur.BytePos() // 3
//
//	cur.Bump() // ' '
//
//	identStart := cur.BytePos()
//	cur.SkipWhile(func(r rune) bool { return r < utf8.RuneSelf && unicode.IsLetter(r) })
//	identEnd := cur.BytePos() // 10, "foobar" ends before the multi-byte 竜
//
// Positions are byte offsets, so slicing the original string with them is
// always valid. The cursor assumes its input is well-formed UTF-8; that
// is the caller's precondition, not something the cursor checks.
//
// Не делает: токенизацию, откат по меткам, отображение позиций в
// строки/столбцы — это уровень вызывающего кода.
package runecursor
