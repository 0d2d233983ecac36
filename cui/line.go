package cui

// lineEditor is a minimal single line text buffer with a cursor, backing
// the editable hex field.
type lineEditor struct {
	text   []rune
	cursor int
}

func (l *lineEditor) Set(s string) {
	l.text = []rune(s)
	l.cursor = len(l.text)
}

func (l *lineEditor) Insert(r rune) {
	l.text = append(l.text, 0)
	copy(l.text[l.cursor+1:], l.text[l.cursor:])
	l.text[l.cursor] = r
	l.cursor++
}

func (l *lineEditor) Backspace() {
	if l.cursor == 0 {
		return
	}
	l.text = append(l.text[:l.cursor-1], l.text[l.cursor:]...)
	l.cursor--
}

func (l *lineEditor) Delete() {
	if l.cursor >= len(l.text) {
		return
	}
	l.text = append(l.text[:l.cursor], l.text[l.cursor+1:]...)
}

func (l *lineEditor) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *lineEditor) Right() {
	if l.cursor < len(l.text) {
		l.cursor++
	}
}

func (l *lineEditor) Home() {
	l.cursor = 0
}

func (l *lineEditor) End() {
	l.cursor = len(l.text)
}

func (l *lineEditor) String() string {
	return string(l.text)
}

func (l *lineEditor) Cursor() int {
	return l.cursor
}
