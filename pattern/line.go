package pattern

import "strings"

// Line builds a single row of a rangoli whose outermost letter is
// Alphabet[n]. The row descends from n to the pivot letter m+1 and ascends
// back to n, so the pivot appears once and the row reads the same in both
// directions. Offset m ranges from -1 (the equator, pivot 'a') to n-1 (the
// tip, a lone Alphabet[n]).
//
// Indices outside the alphabet panic; Build validates sizes before calling
// Line.
func Line(n, m int) string {
	var b strings.Builder

	write := func(i int) {
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteByte(Alphabet[i])
	}

	i := n
	for ; i > m; i-- {
		write(i)
	}
	for j := i + 2; j <= n; j++ {
		write(j)
	}

	return b.String()
}
