package rotation

import (
	"reflect"
	"testing"
	"time"

	"github.com/mmynk/roommates/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(b bool) *bool { return &b }

func TestState_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		wantNext int64
	}{
		{"first to second", State{Order: []int64{1, 2, 3}, Assignee: 1}, 2},
		{"middle to last", State{Order: []int64{1, 2, 3}, Assignee: 2}, 3},
		{"wraps at end", State{Order: []int64{1, 2, 3}, Assignee: 3}, 1},
		{"single entry stays", State{Order: []int64{7}, Assignee: 7}, 7},
		{"absent assignee goes to head", State{Order: []int64{4, 5}, Assignee: 9}, 4},
		{"duplicates use first occurrence", State{Order: []int64{1, 2, 1, 3}, Assignee: 1}, 2},
		{"empty order unchanged", State{Order: nil, Assignee: 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.Rotate()
			if got.Assignee != tt.wantNext {
				t.Errorf("Rotate().Assignee = %d, want %d", got.Assignee, tt.wantNext)
			}
			if !reflect.DeepEqual(got.Order, tt.state.Order) {
				t.Errorf("Rotate() changed order: %v -> %v", tt.state.Order, got.Order)
			}
		})
	}
}

func TestState_Remove(t *testing.T) {
	tests := []struct {
		name         string
		state        State
		person       int64
		wantOrder    []int64
		wantAssignee int64
	}{
		{
			name:         "assignee leaves, head takes over",
			state:        State{Order: []int64{1, 2, 3}, Assignee: 2},
			person:       2,
			wantOrder:    []int64{1, 3},
			wantAssignee: 1,
		},
		{
			name:         "other member leaves, assignee kept",
			state:        State{Order: []int64{1, 2, 3}, Assignee: 1},
			person:       2,
			wantOrder:    []int64{1, 3},
			wantAssignee: 1,
		},
		{
			name:         "head assignee leaves",
			state:        State{Order: []int64{1, 2, 3}, Assignee: 1},
			person:       1,
			wantOrder:    []int64{2, 3},
			wantAssignee: 2,
		},
		{
			name:         "last entry leaves",
			state:        State{Order: []int64{4}, Assignee: 4},
			person:       4,
			wantOrder:    []int64{},
			wantAssignee: 0,
		},
		{
			name:         "duplicates all removed",
			state:        State{Order: []int64{1, 2, 1}, Assignee: 2},
			person:       1,
			wantOrder:    []int64{2},
			wantAssignee: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.Remove(tt.person)
			if !reflect.DeepEqual(got.Order, tt.wantOrder) {
				t.Errorf("Remove().Order = %v, want %v", got.Order, tt.wantOrder)
			}
			if got.Assignee != tt.wantAssignee {
				t.Errorf("Remove().Assignee = %d, want %d", got.Assignee, tt.wantAssignee)
			}
		})
	}
}

func TestRemovePerson_DoesNotAlias(t *testing.T) {
	order := []int64{1, 2, 3}
	out := RemovePerson(order, 2)
	out[0] = 99
	if order[0] != 1 {
		t.Errorf("RemovePerson mutated its input: %v", order)
	}
}

func TestAdvance_Daily(t *testing.T) {
	now := date(2024, 3, 10)
	chore := &models.Chore{
		Description:   "Dishes",
		StartDate:     date(2024, 3, 8),
		EndDate:       date(2024, 3, 9),
		IsTask:        true,
		Completed:     boolPtr(true),
		Recurrence:    models.RecurrenceDaily,
		AssigneeID:    1,
		RotationOrder: []int64{1, 2},
	}

	if !Advance(chore, now) {
		t.Fatal("Advance() = false, want true")
	}
	if chore.AssigneeID != 2 {
		t.Errorf("assignee = %d, want 2", chore.AssigneeID)
	}
	if got := chore.EndDate.Sub(chore.StartDate); got != 24*time.Hour {
		t.Errorf("window width = %v, want 24h", got)
	}
	if !chore.StartDate.Equal(date(2024, 3, 9)) || !chore.EndDate.Equal(date(2024, 3, 10)) {
		t.Errorf("window = [%v, %v], want [2024-03-09, 2024-03-10]", chore.StartDate, chore.EndDate)
	}
	if chore.Completed == nil || *chore.Completed {
		t.Errorf("completed = %v, want false", chore.Completed)
	}
}

func TestAdvance_WeeklyWrapsAround(t *testing.T) {
	now := date(2024, 5, 20)
	chore := &models.Chore{
		Description:   "Vacuum",
		StartDate:     date(2024, 5, 6),
		EndDate:       date(2024, 5, 13),
		Recurrence:    models.RecurrenceWeekly,
		AssigneeID:    3,
		RotationOrder: []int64{1, 2, 3},
	}

	if !Advance(chore, now) {
		t.Fatal("Advance() = false, want true")
	}
	if chore.AssigneeID != 1 {
		t.Errorf("assignee = %d, want 1 (wrap)", chore.AssigneeID)
	}
	if got := chore.EndDate.Sub(chore.StartDate); got != 7*24*time.Hour {
		t.Errorf("window width = %v, want 168h", got)
	}
	if chore.Completed != nil {
		t.Errorf("reminder completed = %v, want nil", *chore.Completed)
	}
}

func TestAdvance_Monthly(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// Jan 3 is in a 31-day month; Feb 2 (2024) is in a 29-day month.
			name:      "january into leap february",
			start:     date(2024, 1, 1),
			end:       date(2024, 1, 31),
			wantStart: date(2024, 2, 1),
			wantEnd:   date(2024, 2, 29),
		},
		{
			name:      "february into march",
			start:     date(2024, 2, 1),
			end:       date(2024, 2, 28),
			wantStart: date(2024, 3, 1),
			wantEnd:   date(2024, 3, 30),
		},
		{
			name:      "thirty-day month",
			start:     date(2023, 4, 1),
			end:       date(2023, 4, 15),
			wantStart: date(2023, 5, 1),
			wantEnd:   date(2023, 5, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chore := &models.Chore{
				Description:   "Clean fridge",
				StartDate:     tt.start,
				EndDate:       tt.end,
				Recurrence:    models.RecurrenceMonthly,
				AssigneeID:    1,
				RotationOrder: []int64{1, 2},
			}
			if !Advance(chore, tt.end.Add(time.Hour)) {
				t.Fatal("Advance() = false, want true")
			}
			if !chore.StartDate.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", chore.StartDate, tt.wantStart)
			}
			if !chore.EndDate.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", chore.EndDate, tt.wantEnd)
			}
			if chore.AssigneeID != 2 {
				t.Errorf("assignee = %d, want 2", chore.AssigneeID)
			}
		})
	}
}

func TestAdvance_NoOp(t *testing.T) {
	now := date(2024, 6, 1)
	tests := []struct {
		name  string
		chore *models.Chore
	}{
		{
			name: "window not elapsed",
			chore: &models.Chore{
				StartDate: date(2024, 5, 31), EndDate: date(2024, 6, 2),
				Recurrence: models.RecurrenceDaily, AssigneeID: 1, RotationOrder: []int64{1, 2},
				IsTask: true, Completed: boolPtr(true),
			},
		},
		{
			name: "ends exactly now",
			chore: &models.Chore{
				StartDate: date(2024, 5, 31), EndDate: now,
				Recurrence: models.RecurrenceDaily, AssigneeID: 1, RotationOrder: []int64{1, 2},
			},
		},
		{
			name: "not recurring",
			chore: &models.Chore{
				StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 2),
				Recurrence: models.RecurrenceNone, AssigneeID: 1, RotationOrder: []int64{1, 2},
			},
		},
		{
			name: "empty rotation order",
			chore: &models.Chore{
				StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 2),
				Recurrence: models.RecurrenceWeekly, AssigneeID: 1,
			},
		},
		{
			name: "unknown recurrence",
			chore: &models.Chore{
				StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 2),
				Recurrence: "hourly", AssigneeID: 1, RotationOrder: []int64{1, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.chore.Clone()
			if Advance(tt.chore, now) {
				t.Error("Advance() = true, want false")
			}
			if !reflect.DeepEqual(before, tt.chore) {
				t.Errorf("chore changed:\nbefore %+v\nafter  %+v", before, tt.chore)
			}
		})
	}
}

func TestCatchUp(t *testing.T) {
	chore := &models.Chore{
		StartDate:     date(2024, 1, 1),
		EndDate:       date(2024, 1, 2),
		Recurrence:    models.RecurrenceDaily,
		AssigneeID:    1,
		RotationOrder: []int64{1, 2, 3},
	}
	now := date(2024, 1, 5).Add(12 * time.Hour)

	cycles := CatchUp(chore, now)

	// Windows: [1,2] -> [2,3] -> [3,4] -> [4,5] -> [5,6]; the last one contains now.
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
	if chore.AssigneeID != 2 {
		t.Errorf("assignee = %d, want 2", chore.AssigneeID)
	}
	if Due(chore, now) {
		t.Error("chore still due after CatchUp")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		t    time.Time
		want int
	}{
		{date(2024, 2, 10), 29},
		{date(2023, 2, 10), 28},
		{date(2024, 4, 30), 30},
		{date(2024, 12, 31), 31},
	}
	for _, tt := range tests {
		if got := daysInMonth(tt.t); got != tt.want {
			t.Errorf("daysInMonth(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}
