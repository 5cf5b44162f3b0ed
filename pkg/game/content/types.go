// Package content defines the authored game content: text for the intro and
// ending screens and the per-level map and system configuration. Content is
// decoded from YAML once and treated as immutable afterwards.
package content

import "strings"

// Point is a grid coordinate in content files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GameConfig holds the global text content.
type GameConfig struct {
	PlayerName   string   `yaml:"player_name"`
	SplashLines  []string `yaml:"splash_lines"`
	IntroText1   string   `yaml:"intro_text_1"`
	IntroText2   string   `yaml:"intro_text_2"`
	GameOverText string   `yaml:"gameover_text"`
}

// Splash returns the splash art as a single block of text.
func (g GameConfig) Splash() string {
	return strings.Join(g.SplashLines, "\n")
}

// LevelConfig is one authored level: its map and its system.
type LevelConfig struct {
	Number int          `yaml:"number"`
	Name   string       `yaml:"name"`
	Map    MapConfig    `yaml:"map"`
	System SystemConfig `yaml:"system"`
}

// MapConfig describes the level geometry.
type MapConfig struct {
	XDim             int              `yaml:"x_dimension"`
	YDim             int              `yaml:"y_dimension"`
	PathCells        []PathCellConfig `yaml:"path_cells"`
	CoordEnter       Point            `yaml:"coord_enter"`
	CoordExit        Point            `yaml:"coord_exit"`
	OrientationEnter int              `yaml:"orientation_enter"`
	Tools            []ItemConfig     `yaml:"tools"`
	Artifacts        []ItemConfig     `yaml:"artifacts"`
}

// PathCellConfig is a walkable cell, optionally carrying one-time story text.
type PathCellConfig struct {
	Coordinates Point  `yaml:"coordinates"`
	StoryText   string `yaml:"story_text"`
}

// ItemConfig is a tool or artifact lying on the map.
type ItemConfig struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
}

// SystemConfig lists the interfaces, devices and links of a level.
type SystemConfig struct {
	Interfaces []InterfaceConfig `yaml:"interfaces"`
	Devices    []DeviceConfig    `yaml:"devices"`
	Links      []LinkConfig      `yaml:"links"`
}

// InterfaceConfig is a player-facing fixture.
type InterfaceConfig struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Type          string `yaml:"type"`
	Enabled       bool   `yaml:"enabled"`
	X             int    `yaml:"x"`
	Y             int    `yaml:"y"`
	Orientation   int    `yaml:"orientation"`
	MsgActionVerb string `yaml:"msg_action_verb"`
	Interactive   *bool  `yaml:"interactive,omitempty"` // nil means true
}

// DeviceConfig is a controllable object.
type DeviceConfig struct {
	ID                   int                `yaml:"id"`
	Name                 string             `yaml:"name"`
	Description          string             `yaml:"description"`
	Type                 string             `yaml:"type"`
	Enabled              bool               `yaml:"enabled"`
	Active               bool               `yaml:"active"`
	X                    int                `yaml:"x"`
	Y                    int                `yaml:"y"`
	MsgActionTrue        string             `yaml:"msg_action_true"`
	MsgActionFalse       string             `yaml:"msg_action_false"`
	MsgActiveTrue        string             `yaml:"msg_active_true"`
	MsgActiveFalse       string             `yaml:"msg_active_false"`
	MsgToggleActiveTrue  string             `yaml:"msg_toggle_active_true"`
	MsgToggleActiveFalse string             `yaml:"msg_toggle_active_false"`
	MsgUnmetDependencies string             `yaml:"msg_unmet_dependencies"`
	Dependencies         []DependencyConfig `yaml:"dependencies"`
	Death                *DeathConfig       `yaml:"death,omitempty"`
}

// DependencyConfig requires another device to be in a given state.
type DependencyConfig struct {
	DeviceID    int  `yaml:"device_id"`
	ActiveState bool `yaml:"active_state"`
}

// DeathConfig marks a device as lethal while its active state equals ActiveState.
type DeathConfig struct {
	ActiveState bool   `yaml:"active_state"`
	Description string `yaml:"description"`
}

// LinkConfig connects an interface to a device it toggles.
type LinkConfig struct {
	InterfaceID int `yaml:"interface_id"`
	DeviceID    int `yaml:"device_id"`
}
