// Package interaction tracks pointer hover and click selection over regions.
package interaction

// Tracker holds at most one hovered and one selected region id. Hover is transient and
// follows the pointer; selection is sticky until deselected or the user clicks outside.
// The zero value is ready to use. A Tracker is not safe for concurrent use.
type Tracker struct {
	hovered  string
	selected string
}

// Restore returns a tracker in the given situation.
func Restore(hovered, selected string) *Tracker {
	return &Tracker{hovered: hovered, selected: selected}
}

// PointerOver marks id as hovered, replacing any previous hover.
func (t *Tracker) PointerOver(id string) {
	t.hovered = id
}

// PointerOut clears the hover. The selection is kept.
func (t *Tracker) PointerOut() {
	t.hovered = ""
}

// Click selects id, replacing any previous selection.
func (t *Tracker) Click(id string) {
	t.selected = id
}

// ClickOutside clears the selection, as clicking empty space around the model does.
func (t *Tracker) ClickOutside() {
	t.selected = ""
}

// Deselect clears the selection.
func (t *Tracker) Deselect() {
	t.selected = ""
}

// Hovered returns the hovered id, or "" when nothing is hovered.
func (t *Tracker) Hovered() string {
	return t.hovered
}

// Selected returns the selected id, or "" when nothing is selected.
func (t *Tracker) Selected() string {
	return t.selected
}

// TooltipVisible reports whether id should show its tooltip.
func (t *Tracker) TooltipVisible(id string) bool {
	return id != "" && (id == t.hovered || id == t.selected)
}

// Panel returns the id shown in the sticky detail panel.
func (t *Tracker) Panel() (string, bool) {
	return t.selected, t.selected != ""
}
