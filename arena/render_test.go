package arena

import (
	"strings"
	"testing"
)

func TestRenderRowsShape(t *testing.T) {
	ctrl := NewGameController(MatchConfig{Seed: 1})
	rows := RenderRows(ctrl.State())

	if len(rows) != DISPLAY_ROWS {
		t.Fatalf("Expected %d rows, got %d", DISPLAY_ROWS, len(rows))
	}
	for y := 0; y < BOARD_HEIGHT; y++ {
		if n := len([]rune(rows[y])); n != BOARD_WIDTH {
			t.Errorf("Row %d has %d cells, want %d", y, n, BOARD_WIDTH)
		}
	}

	top := []rune(rows[0])
	bottom := []rune(rows[BOARD_HEIGHT-1])
	for x := 0; x < BOARD_WIDTH; x++ {
		if top[x] != wallGlyph || bottom[x] != wallGlyph {
			t.Fatalf("Border row cell %d is not a wall", x)
		}
	}
	for y := 0; y < BOARD_HEIGHT; y++ {
		line := []rune(rows[y])
		if line[0] != wallGlyph || line[BOARD_WIDTH-1] != wallGlyph {
			t.Fatalf("Border column in row %d is not a wall", y)
		}
	}
}

func TestRenderRowsAgentsAndTrails(t *testing.T) {
	a := &Agent{
		ID: 1, Glyph: "▲", Pos: Position{X: 12, Y: 5}, Dir: RIGHT, Alive: true,
		Trail: []TrailPoint{
			{Pos: Position{X: 10, Y: 5}, In: RIGHT, Out: RIGHT},
			{Pos: Position{X: 11, Y: 5}, In: RIGHT, Out: RIGHT},
		},
	}
	dead := &Agent{
		ID: 2, Glyph: "■", Pos: Position{X: 30, Y: 8}, Dir: LEFT, Alive: false,
		Trail: []TrailPoint{{Pos: Position{X: 31, Y: 8}, In: LEFT, Out: LEFT}},
	}
	state := &MatchState{Agents: []*Agent{a, dead}, Tick: 7}

	rows := RenderRows(state)
	row5 := []rune(rows[5])
	if row5[12] != '▲' {
		t.Errorf("Head cell should show the glyph, got %q", row5[12])
	}
	if row5[10] != '─' || row5[11] != '─' {
		t.Errorf("Straight trail should render as ─, got %q %q", row5[10], row5[11])
	}

	// A dead agent's trail persists but its head glyph does not.
	row8 := []rune(rows[8])
	if row8[31] != '─' {
		t.Errorf("Dead agent's trail should persist, got %q", row8[31])
	}
	if row8[30] != ' ' {
		t.Errorf("Dead agent's head should not render, got %q", row8[30])
	}

	status := rows[DISPLAY_ROWS-1]
	if !strings.Contains(status, "TICK   7") {
		t.Errorf("Status row should show the tick: %q", status)
	}
	if !strings.Contains(status, "▲") || strings.Contains(status, "■") {
		t.Errorf("Status row should list only living glyphs: %q", status)
	}
}

func TestConnectorGlyphs(t *testing.T) {
	cases := []struct {
		in, out Direction
		want    rune
	}{
		{RIGHT, RIGHT, '─'},
		{LEFT, LEFT, '─'},
		{UP, UP, '│'},
		{DOWN, DOWN, '│'},
		{RIGHT, UP, '┘'},
		{DOWN, LEFT, '┘'},
		{LEFT, UP, '└'},
		{DOWN, RIGHT, '└'},
		{RIGHT, DOWN, '┐'},
		{UP, LEFT, '┐'},
		{LEFT, DOWN, '┌'},
		{UP, RIGHT, '┌'},
	}
	for _, c := range cases {
		if got := connectorGlyph(c.in, c.out); got != c.want {
			t.Errorf("connectorGlyph(%v, %v) = %q, want %q", c.in, c.out, got, c.want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	winner := &Agent{ID: 3, Glyph: "●", Alive: true}
	state := &MatchState{Agents: []*Agent{winner}, Tick: 137, Over: true, Winner: winner}

	rows := RenderSummary(state)
	if len(rows) != 2 {
		t.Fatalf("Summary should be 2 rows, got %d", len(rows))
	}
	if rows[0] != "WINNER ● AGENT 3" {
		t.Errorf("Unexpected winner row: %q", rows[0])
	}
	if rows[1] != "MATCH OVER AFTER 137 TICKS" {
		t.Errorf("Unexpected closing row: %q", rows[1])
	}

	state.Winner = nil
	if rows := RenderSummary(state); rows[0] != "NO WINNER" {
		t.Errorf("Unexpected draw row: %q", rows[0])
	}
}

type recordingHost struct {
	updated map[int]string
	appends []string
}

func (h *recordingHost) UpdateRow(index int, content string) {
	if h.updated == nil {
		h.updated = map[int]string{}
	}
	h.updated[index] = content
}

func (h *recordingHost) AppendRow(content string) {
	h.appends = append(h.appends, content)
}

func TestRenderToPushesEveryRow(t *testing.T) {
	ctrl := NewGameController(MatchConfig{Seed: 1})
	host := &recordingHost{}

	RenderTo(host, ctrl.State())
	if len(host.updated) != DISPLAY_ROWS {
		t.Fatalf("Expected %d row updates, got %d", DISPLAY_ROWS, len(host.updated))
	}
	for i, row := range RenderRows(ctrl.State()) {
		if host.updated[i] != row {
			t.Errorf("Row %d mismatch", i)
		}
	}
	if len(host.appends) != 0 {
		t.Error("Frame updates should never append rows")
	}
}
