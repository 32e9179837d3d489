// Package panel is the view/tab controller: exactly one dashboard panel is
// active at a time. Switching panels never touches the entity store or the
// held route.
package panel

import "sync"

// Panel names a dashboard panel.
type Panel string

// The dashboard panels.
const (
	Overview Panel = "overview"
	Members  Panel = "members"
	Map      Panel = "map"
	Insights Panel = "insights"
	Settings Panel = "settings"
)

// Valid reports whether p names a known panel.
func Valid(p Panel) bool {
	switch p {
	case Overview, Members, Map, Insights, Settings:
		return true
	}
	return false
}

// Modal names an open add-entity modal.
type Modal string

// Modal states. ModalNone means no modal is open.
const (
	ModalNone    Modal = ""
	ModalOfficer Modal = "officer"
	ModalMember  Modal = "member"
)

// Controller tracks the active panel and the open modal.
type Controller struct {
	mu     sync.Mutex
	active Panel
	modal  Modal
}

// NewController starts on the overview panel.
func NewController() *Controller {
	return &Controller{active: Overview}
}

// Active returns the current panel.
func (c *Controller) Active() Panel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Activate switches to p. Unknown panels are ignored.
func (c *Controller) Activate(p Panel) {
	if !Valid(p) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = p
}

// ForceMap switches to the map panel regardless of the prior panel. The
// location capture machine calls this when map-click listening starts.
func (c *Controller) ForceMap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = Map
}

// OpenModal opens the named add-entity modal.
func (c *Controller) OpenModal(m Modal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = m
}

// CloseModal closes any open modal.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = ModalNone
}

// ActiveModal returns the open modal, or ModalNone.
func (c *Controller) ActiveModal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}
