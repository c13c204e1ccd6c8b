package game

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Render formats a position for the terminal. B's pit row is printed
// reversed so stones flow counter-clockwise around the board, with each
// side's store on its right. The side to move is shown bold; pit index rows
// are dimmed. Render is a pure function of the position.
func Render(s State) string {
	labelA := termenv.String("A").Foreground(termenv.ANSICyan)
	labelB := termenv.String("B").Foreground(termenv.ANSIMagenta)
	if s.CurrentPlayer() == PlayerA {
		labelA = labelA.Bold()
	} else {
		labelB = labelB.Bold()
	}

	var b strings.Builder
	pitsA := s.Pits(PlayerA)
	pitsB := s.Pits(PlayerB)

	fmt.Fprintf(&b, "    %s: [", labelB)
	for k := 0; k < PitsPerSide; k++ {
		if k > 0 {
			b.WriteByte(' ')
		}
		n := pitsB[PitsPerSide-1-k]
		b.WriteString(termenv.String(fmt.Sprintf("%2d", n)).Foreground(termenv.ANSIMagenta).String())
	}
	b.WriteString("]\n       ")
	for k := 0; k < PitsPerSide; k++ {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(termenv.String(fmt.Sprintf("%2d", PitsPerSide-1-k)).Faint().String())
	}
	b.WriteByte('\n')

	storeB := termenv.String(fmt.Sprintf("[B:%2d]", s.Store(PlayerB))).Foreground(termenv.ANSIMagenta)
	storeA := termenv.String(fmt.Sprintf("[A:%2d]", s.Store(PlayerA))).Foreground(termenv.ANSICyan)
	fmt.Fprintf(&b, " %s%s%s\n", storeB, strings.Repeat(" ", 3*PitsPerSide-5), storeA)

	fmt.Fprintf(&b, "    %s: [", labelA)
	for i := 0; i < PitsPerSide; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(termenv.String(fmt.Sprintf("%2d", pitsA[i])).Foreground(termenv.ANSICyan).String())
	}
	b.WriteString("]\n       ")
	for i := 0; i < PitsPerSide; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(termenv.String(fmt.Sprintf("%2d", i)).Faint().String())
	}
	b.WriteByte('\n')

	return b.String()
}
