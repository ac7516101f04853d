package menu

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// prompt reads operator input either as whitespace-delimited tokens or as
// whole lines, mixing both on the same stream.
type prompt struct {
	r *bufio.Reader
}

func newPrompt(r io.Reader) *prompt {
	return &prompt{r: bufio.NewReader(r)}
}

// token skips leading whitespace and returns the next run of
// non-whitespace characters.  The delimiter after the token stays unread.
func (p *prompt) token() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			if b.Len() > 0 && err == io.EOF {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = p.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// skipOne drops the single character left after a token, normally the
// newline that ended it.
func (p *prompt) skipOne() {
	_, _, _ = p.r.ReadRune()
}

// line returns the rest of the current line without its terminator.
func (p *prompt) line() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil && !(err == io.EOF && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
