package arena

import (
	"fmt"
	"strings"
)

// ============================================================================
// Render adapter: grid + agent state to display rows. Presentation only.
// ============================================================================

// DISPLAY_ROWS is the number of row handles the host allocates at match
// start: one per grid row plus a status row.
const DISPLAY_ROWS = BOARD_HEIGHT + 1

// RowHost is the display surface the host provides. Updates to rows the
// host never allocated are dropped silently on the host side.
type RowHost interface {
	UpdateRow(index int, content string)
	AppendRow(content string)
}

const wallGlyph = '█'

// RenderRows maps the match state to DISPLAY_ROWS display rows.
func RenderRows(state *MatchState) []string {
	var cells [BOARD_HEIGHT][BOARD_WIDTH]rune
	for y := 0; y < BOARD_HEIGHT; y++ {
		for x := 0; x < BOARD_WIDTH; x++ {
			if x == 0 || x == BOARD_WIDTH-1 || y == 0 || y == BOARD_HEIGHT-1 {
				cells[y][x] = wallGlyph
			} else {
				cells[y][x] = ' '
			}
		}
	}

	for _, a := range state.Agents {
		for _, tp := range a.Trail {
			cells[tp.Pos.Y][tp.Pos.X] = connectorGlyph(tp.In, tp.Out)
		}
		if a.Alive {
			cells[a.Pos.Y][a.Pos.X] = []rune(a.Glyph)[0]
		}
	}

	rows := make([]string, 0, DISPLAY_ROWS)
	for y := 0; y < BOARD_HEIGHT; y++ {
		rows = append(rows, string(cells[y][:]))
	}
	rows = append(rows, statusRow(state))
	return rows
}

func statusRow(state *MatchState) string {
	glyphs := []string{}
	for _, a := range state.Agents {
		if a.Alive {
			glyphs = append(glyphs, a.Glyph)
		}
	}
	return fmt.Sprintf("TICK %3d  ALIVE %s", state.Tick, strings.Join(glyphs, " "))
}

// RenderSummary produces the rows appended once the match ends.
func RenderSummary(state *MatchState) []string {
	outcome := "NO WINNER"
	if state.Winner != nil {
		outcome = fmt.Sprintf("WINNER %s AGENT %d", state.Winner.Glyph, state.Winner.ID)
	}
	return []string{
		outcome,
		fmt.Sprintf("MATCH OVER AFTER %d TICKS", state.Tick),
	}
}

// RenderTo pushes the current frame to the host, one row per handle.
func RenderTo(host RowHost, state *MatchState) {
	for i, row := range RenderRows(state) {
		host.UpdateRow(i, row)
	}
}

// connectorGlyph picks the trail glyph from the incoming and outgoing
// heading of a trail point: a straight segment or one of the four corner
// joins. The segment connects the side the head came from with the side it
// left through.
func connectorGlyph(in, out Direction) rune {
	from := in.Opposite()
	hasSide := func(d Direction) bool { return from == d || out == d }

	switch {
	case hasSide(LEFT) && hasSide(RIGHT):
		return '─'
	case hasSide(UP) && hasSide(DOWN):
		return '│'
	case hasSide(LEFT) && hasSide(UP):
		return '┘'
	case hasSide(RIGHT) && hasSide(UP):
		return '└'
	case hasSide(LEFT) && hasSide(DOWN):
		return '┐'
	case hasSide(RIGHT) && hasSide(DOWN):
		return '┌'
	}
	return '+'
}
