package devtools

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/game/level"
)

// DescribeSystem writes the interfaces, devices and links of a level with
// their current state and which dependencies are unmet.
func DescribeSystem(w io.Writer, lvl *level.Level) {
	sys := lvl.System

	fmt.Fprintln(w, "Interfaces:")
	for _, i := range sys.Interfaces() {
		fmt.Fprintf(w, "  %d %q type: %s at: %v use_from: %v enabled: %v\n",
			i.ID, i.Name, i.Type, i.Position, i.UseCell(), i.Enabled)
		for _, d := range sys.DevicesFor(i.ID) {
			fmt.Fprintf(w, "    -> device %d %q\n", d.ID, d.Name)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Devices:")
	for _, d := range sys.Devices() {
		fmt.Fprintf(w, "  %d %q type: %s at: %v enabled: %v active: %v\n",
			d.ID, d.Name, d.Type, d.Position, d.Enabled, d.Active)
		unmet := make(map[int]bool)
		for _, dep := range d.UnmetDependencies(sys) {
			unmet[dep.DeviceID] = true
		}
		for _, dep := range d.Dependencies {
			state := "met"
			if unmet[dep.DeviceID] {
				state = "unmet"
			}
			fmt.Fprintf(w, "    needs device %d active=%v (%s)\n", dep.DeviceID, dep.ActiveState, state)
		}
		if d.Death != nil {
			fmt.Fprintf(w, "    lethal when active=%v lethal_now: %v\n", d.Death.ActiveState, d.IsLethal())
		}
		for _, i := range sys.InterfacesFor(d.ID) {
			fmt.Fprintf(w, "    <- interface %d %q\n", i.ID, i.Name)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Links:")
	for _, l := range sys.Links() {
		fmt.Fprintf(w, "  interface %d -> device %d\n", l.InterfaceID, l.DeviceID)
	}
	fmt.Fprintln(w, "")
}

// DescribeBindings writes every action with the codes bound to it
func DescribeBindings(w io.Writer) {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	fmt.Fprintln(w, "Bindings:")
	for _, a := range actions {
		fmt.Fprintf(w, "  %-12s %s\n", input.ActionName(a), strings.Join(byAction[a], ", "))
	}
	fmt.Fprintf(w, "  %-12s %s\n", input.ActionName(input.ActionSelect), "0-9...")
	fmt.Fprintln(w, "")
}
