package domain_test

import (
	"testing"

	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineEmployee() domain.Employee {
	return domain.Employee{
		EmployeeID:    42,
		Name:          "Dana Reyes",
		Performance:   domain.LevelMedium,
		Potential:     domain.LevelHigh,
		GridPosition:  domain.GridPositionFor(domain.LevelMedium, domain.LevelHigh),
		DonutPosition: domain.DonutCenter,
		Flags:         []string{"promotion_ready"},
	}
}

func TestLedger_GridMove_RecordsAndCollapses(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	active := ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, domain.LevelHigh, domain.LevelHigh), orig)
	require.NotNil(t, active)
	assert.Equal(t, 1, ledger.Len())
	assert.True(t, ledger.HasEventsFor(orig.EmployeeID))

	// Moving back to the original pair cancels the recorded move entirely.
	active = ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, orig.Performance, orig.Potential), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
	assert.False(t, ledger.HasEventsFor(orig.EmployeeID))
}

func TestLedger_GridMove_LastWriteWins(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, domain.LevelLow, domain.LevelLow), orig)
	active := ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, domain.LevelHigh, domain.LevelMedium), orig)

	require.NotNil(t, active)
	assert.Equal(t, 1, ledger.Len(), "a second move replaces the first, never stacks")
	assert.Equal(t, domain.LevelHigh, active.Performance)
	assert.Equal(t, domain.LevelMedium, active.Potential)
}

func TestLedger_DonutMove_CenterIsNetZero(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	ledger.Track(domain.NewDonutMoveEvent(orig.EmployeeID, 3), orig)
	assert.Equal(t, 1, ledger.Len())

	active := ledger.Track(domain.NewDonutMoveEvent(orig.EmployeeID, domain.DonutCenter), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_FlagAdd_AlreadyOnBaselineIsNetZero(t *testing.T) {
	orig := baselineEmployee() // baseline already carries promotion_ready
	ledger := domain.NewEventLedger(nil)

	active := ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "promotion_ready"), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_FlagRoundTrip_CancelsOut(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	// flight_risk is not on the baseline, so adding it is a real change.
	active := ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "flight_risk"), orig)
	require.NotNil(t, active)
	assert.Equal(t, domain.EventFlagAdd, active.Kind)

	// Removing it again is net zero and must cancel the FLAG_ADD, even
	// though the kinds differ.
	active = ledger.Track(domain.NewFlagRemoveEvent(orig.EmployeeID, "flight_risk"), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_FlagRemove_ThenRestore_CancelsOut(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	active := ledger.Track(domain.NewFlagRemoveEvent(orig.EmployeeID, "promotion_ready"), orig)
	require.NotNil(t, active)
	assert.Equal(t, domain.EventFlagRemove, active.Kind)

	active = ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "promotion_ready"), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_AxesAreIndependent(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, domain.LevelHigh, domain.LevelHigh), orig)
	ledger.Track(domain.NewDonutMoveEvent(orig.EmployeeID, 7), orig)
	ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "flight_risk"), orig)
	assert.Equal(t, 3, ledger.Len())

	// Undoing the grid move must leave the donut and flag events alone.
	ledger.Track(domain.NewGridMoveEvent(orig.EmployeeID, orig.Performance, orig.Potential), orig)
	assert.Equal(t, 2, ledger.Len())

	kinds := make([]domain.EventKind, 0, 2)
	for evt := range ledger.EventsFor(orig.EmployeeID) {
		kinds = append(kinds, evt.Kind)
	}
	assert.Equal(t, []domain.EventKind{domain.EventDonutMove, domain.EventFlagAdd}, kinds)
}

func TestLedger_DistinctFlagsOccupyDistinctSlots(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "flight_risk"), orig)
	ledger.Track(domain.NewFlagAddEvent(orig.EmployeeID, "key_talent"), orig)
	assert.Equal(t, 2, ledger.Len())

	ledger.Track(domain.NewFlagRemoveEvent(orig.EmployeeID, "flight_risk"), orig)
	assert.Equal(t, 1, ledger.Len())

	events := ledger.Active()
	assert.Equal(t, "key_talent", events[0].FlagKey)
}

func TestLedger_EventsScopedToEmployee(t *testing.T) {
	a := baselineEmployee()
	b := baselineEmployee()
	b.EmployeeID = 99
	ledger := domain.NewEventLedger(nil)

	ledger.Track(domain.NewGridMoveEvent(a.EmployeeID, domain.LevelLow, domain.LevelLow), a)
	ledger.Track(domain.NewGridMoveEvent(b.EmployeeID, domain.LevelLow, domain.LevelLow), b)
	assert.Equal(t, 2, ledger.Len())

	// Undoing a's move must not touch b's.
	ledger.Track(domain.NewGridMoveEvent(a.EmployeeID, a.Performance, a.Potential), a)
	assert.False(t, ledger.HasEventsFor(a.EmployeeID))
	assert.True(t, ledger.HasEventsFor(b.EmployeeID))
}

func TestLedger_NetZeroOnEmptyLedgerIsNoOp(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)

	active := ledger.Track(domain.NewDonutMoveEvent(orig.EmployeeID, domain.DonutCenter), orig)
	assert.Nil(t, active)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_CloneIsIndependent(t *testing.T) {
	orig := baselineEmployee()
	ledger := domain.NewEventLedger(nil)
	ledger.Track(domain.NewDonutMoveEvent(orig.EmployeeID, 2), orig)

	clone := ledger.Clone()
	clone.Track(domain.NewFlagAddEvent(orig.EmployeeID, "flight_risk"), orig)

	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestNormalizeFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{name: "nil", flags: nil, want: []string{}},
		{name: "duplicates collapse", flags: []string{"key_talent", "flight_risk", "key_talent"}, want: []string{"flight_risk", "key_talent"}},
		{name: "already sorted set", flags: []string{"flight_risk", "new_to_role"}, want: []string{"flight_risk", "new_to_role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeFlags(tt.flags))
		})
	}
}
