package content

import (
	"strings"
	"testing"
)

func TestValidate_EmbeddedContent(t *testing.T) {
	if err := Validate(defaultLevels); err != nil {
		t.Fatalf("Validate(embedded) error = %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	valid := string(doc(1))
	tests := []struct {
		name string
		raw  string
	}{
		{"no levels", "game:\n  player_name: Ann\nlevels: []\n"},
		{"missing game", "levels: []\n"},
		{"empty player name", strings.Replace(valid, "player_name: Ann", `player_name: ""`, 1)},
		{"string dimension", strings.Replace(valid, "x_dimension: 1", "x_dimension: wide", 1)},
		{"negative coordinate", strings.Replace(valid, "coord_exit: {x: 0, y: 0}", "coord_exit: {x: -1, y: 0}", 1)},
		{"bad orientation", strings.Replace(valid, "coord_exit: {x: 0, y: 0}", "coord_exit: {x: 0, y: 0}\n      orientation_enter: 4", 1)},
		{"unknown interface type", strings.Replace(valid, "system: {}", `system:
      interfaces:
        - {id: 0, name: lever, type: lever, x: 0, y: 0}`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate([]byte(tt.raw)); err == nil {
				t.Errorf("Validate() = nil, want a schema error")
			}
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Errorf("Parse() = nil error, want a schema error")
			}
		})
	}
}

func TestValidate_AcceptsMinimalLevel(t *testing.T) {
	if err := Validate(doc(-1, 0, 5)); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParse_InteractiveFlag(t *testing.T) {
	raw := strings.Replace(string(doc(1)), "    system: {}\n", `    system:
      interfaces:
        - {id: 0, name: "panel", type: "button", x: 0, y: 0, orientation: 0, interactive: false}
        - {id: 1, name: "lever", type: "button", x: 0, y: 0, orientation: 0}
`, 1)
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	lvl, _ := c.Level(1)
	ifaces := lvl.System.Interfaces
	if ifaces[0].Interactive == nil || *ifaces[0].Interactive {
		t.Errorf("interface 0 Interactive = %v, want false", ifaces[0].Interactive)
	}
	if ifaces[1].Interactive != nil {
		t.Errorf("interface 1 Interactive = %v, want nil", *ifaces[1].Interactive)
	}
}
