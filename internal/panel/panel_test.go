package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsOnOverview(t *testing.T) {
	c := NewController()
	assert.Equal(t, Overview, c.Active())
}

func TestActivate(t *testing.T) {
	c := NewController()
	c.Activate(Members)
	assert.Equal(t, Members, c.Active())

	c.Activate(Settings)
	assert.Equal(t, Settings, c.Active())
}

func TestActivateUnknownIgnored(t *testing.T) {
	c := NewController()
	c.Activate(Insights)
	c.Activate("reports")
	assert.Equal(t, Insights, c.Active())
}

func TestForceMap(t *testing.T) {
	c := NewController()
	c.Activate(Settings)
	c.ForceMap()
	assert.Equal(t, Map, c.Active())
}

func TestModalLifecycle(t *testing.T) {
	c := NewController()
	assert.Equal(t, ModalNone, c.ActiveModal())

	c.OpenModal(ModalOfficer)
	assert.Equal(t, ModalOfficer, c.ActiveModal())

	c.OpenModal(ModalMember)
	assert.Equal(t, ModalMember, c.ActiveModal())

	c.CloseModal()
	assert.Equal(t, ModalNone, c.ActiveModal())
}

func TestSwitchingPanelsKeepsModalIndependent(t *testing.T) {
	c := NewController()
	c.OpenModal(ModalOfficer)
	c.Activate(Members)
	assert.Equal(t, ModalOfficer, c.ActiveModal())
	assert.Equal(t, Members, c.Active())
}
