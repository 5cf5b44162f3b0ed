package content

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDefault_LoadsEmbeddedLevels(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := []int{-1, 0, 1, 2, 3}
	got := c.Numbers()
	if len(got) != len(want) {
		t.Fatalf("Numbers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Numbers() = %v, want %v", got, want)
		}
	}

	if c.Game().PlayerName != "Marcus" {
		t.Errorf("PlayerName = %q, want Marcus", c.Game().PlayerName)
	}
	if !strings.Contains(c.Game().Splash(), "_____") {
		t.Error("Splash() missing splash art")
	}
}

func TestDefault_SubstitutesPlayerName(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	lvl, err := c.Level(-1)
	if err != nil {
		t.Fatalf("Level(-1) error = %v", err)
	}
	var story string
	for _, pc := range lvl.Map.PathCells {
		if pc.Coordinates == (Point{X: 0, Y: 3}) {
			story = pc.StoryText
		}
	}
	if !strings.HasPrefix(story, "Marcus breathed") {
		t.Errorf("story text at (0, 3) = %q, want it to start with the player name", story)
	}
	for _, text := range []string{c.Game().IntroText1, c.Game().IntroText2, c.Game().GameOverText} {
		if strings.Contains(text, playerPlaceholder) {
			t.Errorf("placeholder left in %q", text)
		}
	}
}

func TestDefault_NoPlaceholderInLevelTexts(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, n := range c.Numbers() {
		lvl, err := c.Level(n)
		if err != nil {
			t.Fatalf("Level(%d) error = %v", n, err)
		}
		var texts []string
		for _, pc := range lvl.Map.PathCells {
			texts = append(texts, pc.StoryText)
		}
		for _, it := range append(lvl.Map.Tools, lvl.Map.Artifacts...) {
			texts = append(texts, it.Description)
		}
		for _, i := range lvl.System.Interfaces {
			texts = append(texts, i.Description, i.MsgActionVerb)
		}
		for _, d := range lvl.System.Devices {
			texts = append(texts, d.Description, d.MsgActionTrue, d.MsgActionFalse,
				d.MsgActiveTrue, d.MsgActiveFalse, d.MsgToggleActiveTrue,
				d.MsgToggleActiveFalse, d.MsgUnmetDependencies)
			if d.Death != nil {
				texts = append(texts, d.Death.Description)
			}
		}
		for _, text := range texts {
			if strings.Contains(text, playerPlaceholder) {
				t.Errorf("level %d: placeholder left in %q", n, text)
			}
		}
	}
}

func TestParse_SubstitutesDeathDescription(t *testing.T) {
	raw := []byte(`game:
  player_name: "Ada"
levels:
  - number: 1
    name: "One"
    map:
      x_dimension: 1
      y_dimension: 1
      path_cells:
        - coordinates: {x: 0, y: 0}
      coord_enter: {x: 0, y: 0}
      coord_exit: {x: 0, y: 0}
      orientation_enter: 0
    system:
      interfaces: []
      devices:
        - id: 0
          name: "vent"
          type: "vent"
          enabled: true
          active: true
          x: 0
          y: 0
          msg_toggle_active_true: "{player} hears a hiss."
          death:
            active_state: true
            description: "{player} never heard the alarm."
      links: []
`)
	c, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	lvl, err := c.Level(1)
	if err != nil {
		t.Fatal(err)
	}
	d := lvl.System.Devices[0]
	if d.Death.Description != "Ada never heard the alarm." {
		t.Errorf("Death.Description = %q", d.Death.Description)
	}
	if d.MsgToggleActiveTrue != "Ada hears a hiss." {
		t.Errorf("MsgToggleActiveTrue = %q", d.MsgToggleActiveTrue)
	}
}

func TestLevel_Unknown(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if c.HasLevel(99) {
		t.Error("HasLevel(99) = true, want false")
	}
	_, err = c.Level(99)
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Level(99) error = %v, want ErrUnknownLevel", err)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	raw := []byte("game:\n  player_name: Ann\n  favourite_colour: red\nlevels: []\n")
	if _, err := Parse(raw); err == nil {
		t.Error("Parse() with unknown field succeeded, want error")
	}
}

// doc builds a content file holding minimal one-cell levels
func doc(numbers ...int) []byte {
	var b strings.Builder
	b.WriteString("game:\n  player_name: Ann\nlevels:\n")
	for _, n := range numbers {
		fmt.Fprintf(&b, `  - number: %d
    name: L%d
    map:
      x_dimension: 1
      y_dimension: 1
      path_cells:
        - coordinates: {x: 0, y: 0}
      coord_enter: {x: 0, y: 0}
      coord_exit: {x: 0, y: 0}
    system: {}
`, n, n)
	}
	return []byte(b.String())
}

func TestParse_RejectsDuplicateLevels(t *testing.T) {
	raw := doc(1, 1)
	_, err := Parse(raw)
	if err == nil || !strings.Contains(err.Error(), "defined twice") {
		t.Errorf("Parse() error = %v, want duplicate level error", err)
	}
}

func TestNumbers_ReturnsCopy(t *testing.T) {
	c, err := Parse(doc(2, 1))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	nums := c.Numbers()
	if nums[0] != 1 || nums[1] != 2 {
		t.Fatalf("Numbers() = %v, want [1 2]", nums)
	}
	nums[0] = 42
	if c.Numbers()[0] != 1 {
		t.Error("Numbers() exposes internal slice")
	}
}
