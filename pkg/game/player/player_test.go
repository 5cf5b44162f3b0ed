package player

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/entities"
	"alphapoint/pkg/game/level"
)

// onLevel places a fresh player at the entry of an embedded level.
func onLevel(t *testing.T, n int) *Player {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	lvl, err := level.Load(c, n, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("level.Load(%d) error = %v", n, err)
	}
	p := New(c.Game().PlayerName)
	p.Enter(lvl)
	return p
}

// walk moves the player along a sequence of directions, failing on any error.
func walk(t *testing.T, p *Player, dirs ...world.Direction) {
	t.Helper()
	for _, d := range dirs {
		if _, err := p.Move(d); err != nil {
			t.Fatalf("Move(%v) from %v error = %v", d, p.Position, err)
		}
	}
}

func TestEnter_EntryState(t *testing.T) {
	p := onLevel(t, 2)
	if p.Position != world.At(1, 1) || p.Orientation != world.East {
		t.Errorf("after Enter: position %v facing %v, want (1, 1) facing East", p.Position, p.Orientation)
	}
	if len(p.Inventory()) != 0 {
		t.Errorf("Inventory() = %v, want empty", p.Inventory())
	}
}

func TestMove_NonPathCellFromTestingEntry(t *testing.T) {
	p := onLevel(t, -1)
	start, facing := p.Position, p.Orientation

	_, err := p.Move(world.East)
	var moveErr *MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("Move(East) error = %v, want *MoveError", err)
	}
	if moveErr.To != world.At(1, 3) {
		t.Errorf("MoveError.To = %v, want (1, 3)", moveErr.To)
	}
	if p.Position != start || p.Orientation != facing {
		t.Errorf("position %v facing %v changed after failed move", p.Position, p.Orientation)
	}
}

func TestMove_Table(t *testing.T) {
	tests := []struct {
		name    string
		dir     world.Direction
		wantPos world.Coord
		wantErr bool
	}{
		{"into path", world.North, world.At(0, 2), false},
		{"off the map", world.West, world.At(0, 3), true},
		{"closed entrance door", world.South, world.At(0, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := onLevel(t, -1)
			_, err := p.Move(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Move(%v) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
			if p.Position != tt.wantPos {
				t.Errorf("Position = %v, want %v", p.Position, tt.wantPos)
			}
			if !tt.wantErr && p.Orientation != tt.dir {
				t.Errorf("Orientation = %v, want %v", p.Orientation, tt.dir)
			}
		})
	}
}

func TestMove_OpenDoorAllowsPassage(t *testing.T) {
	p := onLevel(t, 1)
	walk(t, p, world.North, world.North)
	if p.Position != world.At(2, 1) {
		t.Fatalf("Position = %v, want (2, 1)", p.Position)
	}

	if _, err := p.Move(world.North); err == nil {
		t.Fatal("walked through the closed airlock door")
	}

	acts := p.Actions()
	if len(acts) != 1 || acts[0].Key != 1 || acts[0].Description() != "push the airlock door button" {
		t.Fatalf("Actions() = %+v, want the airlock door button on key 1", acts)
	}
	out, err := p.DoAction(1)
	if err != nil {
		t.Fatalf("DoAction(1) error = %v", err)
	}
	if len(out.Messages) != 1 || out.Messages[0] != "The door opened." {
		t.Errorf("Messages = %v, want [The door opened.]", out.Messages)
	}

	walk(t, p, world.North)
	if !p.Level().IsComplete(p.Position) {
		t.Errorf("Position %v is not the exit", p.Position)
	}
}

func TestDoAction_UnknownKey(t *testing.T) {
	p := onLevel(t, -1)
	_, err := p.DoAction(9)
	var actErr *ActionError
	if !errors.As(err, &actErr) || actErr.Key != 9 {
		t.Errorf("DoAction(9) error = %v, want *ActionError for key 9", err)
	}
}

func TestDoAction_DisabledDeviceDoesntWork(t *testing.T) {
	p := onLevel(t, -1)
	out, err := p.DoAction(1)
	if err != nil {
		t.Fatalf("DoAction(1) error = %v", err)
	}
	if len(out.Messages) != 1 || out.Messages[0] != entities.DefaultMsgDisabled {
		t.Errorf("Messages = %v, want the disabled text", out.Messages)
	}
}

func TestDoAction_TerminalOpensSession(t *testing.T) {
	p := onLevel(t, -1)
	walk(t, p, world.North, world.East, world.East, world.East, world.East, world.South)

	out, err := p.DoAction(1)
	if err != nil {
		t.Fatalf("DoAction(1) error = %v", err)
	}
	if out.Terminal == nil || out.Terminal.Name != "system terminal" {
		t.Fatalf("Outcome.Terminal = %v, want the system terminal", out.Terminal)
	}
	if d, _ := p.Level().System.Device(1); d.Active {
		t.Error("opening the terminal toggled a device")
	}
}

func TestDoAction_EmptyLinksNothingHappened(t *testing.T) {
	p := onLevel(t, 2)
	walk(t, p, world.East)

	acts := p.Actions()
	if len(acts) != 2 || acts[0].Interface.ID != 0 || acts[1].Interface.ID != 1 {
		t.Fatalf("Actions() = %+v, want button then handwheel", acts)
	}
	out, err := p.DoAction(1)
	if err != nil {
		t.Fatalf("DoAction(1) error = %v", err)
	}
	if len(out.Messages) != 1 || out.Messages[0] != entities.DefaultMsgDisabled {
		t.Errorf("Messages = %v, want %q", out.Messages, entities.DefaultMsgDisabled)
	}
}

func TestReportVisibleObjects(t *testing.T) {
	p := onLevel(t, -1)
	walk(t, p, world.North, world.East, world.East, world.East, world.East, world.North)

	report := p.ReportVisibleObjects()
	for _, want := range []string{"I see a button.", "The door is closed.", "The camera is on."} {
		if !strings.Contains(report, want) {
			t.Errorf("report %q missing %q", report, want)
		}
	}

	walk(t, p, world.South, world.West)
	if got := p.ReportVisibleObjects(); got != "There's nothing of interest here." {
		t.Errorf("report at (3, 2) = %q", got)
	}
}

func TestMove_PicksUpItems(t *testing.T) {
	p := onLevel(t, 3)
	picked, err := p.Move(world.North)
	if err != nil {
		t.Fatalf("Move(North) error = %v", err)
	}
	if len(picked) != 1 || picked[0].Name != "wrench" {
		t.Fatalf("picked = %v, want the wrench", picked)
	}
	if !p.Has("wrench") || len(p.Inventory()) != 1 {
		t.Errorf("Inventory() = %v, want [wrench]", p.Inventory())
	}

	walk(t, p, world.South, world.North)
	if len(p.Inventory()) != 1 {
		t.Errorf("Inventory() = %v after revisiting, want one wrench", p.Inventory())
	}
}

func TestEnter_ClearsInventory(t *testing.T) {
	p := onLevel(t, 3)
	walk(t, p, world.North)

	c, _ := content.Default()
	lvl, err := level.Load(c, 3, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	p.Enter(lvl)
	if len(p.Inventory()) != 0 || p.Has("wrench") {
		t.Errorf("Inventory() = %v after re-entering, want empty", p.Inventory())
	}
}

func TestMove_NamedDirections(t *testing.T) {
	p := onLevel(t, 2)
	steps := []struct {
		name string
		move func() ([]*level.Item, error)
		want world.Coord
		face world.Direction
	}{
		{"right", p.MoveRight, world.At(2, 1), world.East},
		{"left", p.MoveLeft, world.At(1, 1), world.West},
	}
	for _, s := range steps {
		if _, err := s.move(); err != nil {
			t.Fatalf("%s: error = %v", s.name, err)
		}
		if p.Position != s.want || p.Orientation != s.face {
			t.Errorf("%s: at %v facing %v, want %v facing %v", s.name, p.Position, p.Orientation, s.want, s.face)
		}
	}

	var moveErr *MoveError
	if _, err := p.MoveUp(); !errors.As(err, &moveErr) {
		t.Errorf("MoveUp() error = %v, want *MoveError", err)
	}
	if _, err := p.MoveDown(); !errors.As(err, &moveErr) {
		t.Errorf("MoveDown() error = %v, want *MoveError", err)
	}
	if p.Orientation != world.West {
		t.Errorf("failed moves changed orientation to %v", p.Orientation)
	}
}

func TestRefresh_SkipsNonInteractiveKeepsKeysDense(t *testing.T) {
	p := onLevel(t, 2)
	walk(t, p, world.East)

	button, _ := p.Level().System.Interface(0)
	button.Interactive = false
	p.Refresh()

	acts := p.Actions()
	if len(acts) != 1 || acts[0].Key != 1 || acts[0].Interface.ID != 1 {
		t.Fatalf("Actions() = %+v, want the handwheel on key 1", acts)
	}
	if _, err := p.DoAction(2); err == nil {
		t.Error("DoAction(2) succeeded with one action listed")
	}
}

func TestRefresh_FacingDoesNotChangeReach(t *testing.T) {
	p := onLevel(t, 2)
	walk(t, p, world.East)
	before := len(p.Actions())

	p.Orientation = world.West
	p.Refresh()
	if got := len(p.Actions()); got != before {
		t.Errorf("len(Actions()) = %d after turning, want %d", got, before)
	}
}
