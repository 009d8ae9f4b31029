package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTimeSlotWire_TimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		wire    TimeSlotWire
		want    TimeSlot
		wantErr error
	}{
		{
			name: "seconds format",
			wire: TimeSlotWire{DiaSemana: "MONDAY", HoraInicio: strPtr("08:00:00"), HoraFin: strPtr("09:30:00")},
			want: TimeSlot{Monday, at(8, 0), at(9, 30)},
		},
		{
			name: "short format",
			wire: TimeSlotWire{DiaSemana: "thursday", HoraInicio: strPtr("14:00"), HoraFin: strPtr("16:00")},
			want: TimeSlot{Thursday, at(14, 0), at(16, 0)},
		},
		{
			name:    "missing start",
			wire:    TimeSlotWire{DiaSemana: "MONDAY", HoraFin: strPtr("09:00:00")},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "missing end",
			wire:    TimeSlotWire{DiaSemana: "MONDAY", HoraInicio: strPtr("08:00:00")},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "unknown day",
			wire:    TimeSlotWire{DiaSemana: "SUNDAY", HoraInicio: strPtr("08:00:00"), HoraFin: strPtr("09:00:00")},
			wantErr: ErrInvalidDay,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.wire.TimeSlot()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeSlotWire_RawTimeSlot(t *testing.T) {
	raw := TimeSlotWire{DiaSemana: "MONDAY", HoraFin: strPtr("09:00:00")}.RawTimeSlot()
	assert.Equal(t, Monday, raw.Day)
	assert.Equal(t, NoTime, raw.Start)
	assert.Equal(t, at(9, 0), raw.End)
	assert.False(t, raw.Valid())

	raw = TimeSlotWire{DiaSemana: "nope", HoraInicio: strPtr("xx"), HoraFin: strPtr("09:00")}.RawTimeSlot()
	assert.Equal(t, DayOfWeek(0), raw.Day)
	assert.Equal(t, NoTime, raw.Start)

	raw = TimeSlotWire{DiaSemana: "FRIDAY", HoraInicio: strPtr("10:00"), HoraFin: strPtr("11:00")}.RawTimeSlot()
	assert.Equal(t, TimeSlot{Friday, at(10, 0), at(11, 0)}, raw)
}

func TestTimeSlot_JSON(t *testing.T) {
	s := TimeSlot{Wednesday, at(7, 0), at(8, 30)}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"diaSemana":"WEDNESDAY","horaInicio":"07:00:00","horaFin":"08:30:00"}`, string(data))

	var back TimeSlot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)

	_, err = json.Marshal(TimeSlot{Monday, NoTime, at(9, 0)})
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"diaSemana":"MONDAY","horaInicio":"10:00:00","horaFin":"09:00:00"}`), &back)
	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestScheduleSet_JSON(t *testing.T) {
	data, err := json.Marshal(ScheduleSet(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var set ScheduleSet
	err = json.Unmarshal([]byte(`[
		{"diaSemana":"MONDAY","horaInicio":"08:00:00","horaFin":"09:00:00"},
		{"diaSemana":"MONDAY","horaInicio":"09:00:00","horaFin":"10:00:00"}
	]`), &set)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	err = json.Unmarshal([]byte(`[
		{"diaSemana":"MONDAY","horaInicio":"08:00:00","horaFin":"09:00:00"},
		{"diaSemana":"MONDAY","horaInicio":"08:30:00","horaFin":"10:00:00"}
	]`), &set)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestToWireList(t *testing.T) {
	list := ToWireList(ScheduleSet{{Saturday, at(0, 0), at(0, 30)}})
	require.Len(t, list, 1)
	assert.Equal(t, "SATURDAY", list[0].DiaSemana)
	assert.Equal(t, "00:00:00", *list[0].HoraInicio)
	assert.Equal(t, "00:30:00", *list[0].HoraFin)
	assert.Empty(t, ToWireList(nil))
}
