package models

import (
	"bytes"
	"encoding/json"
)

// Field is a schedule value the remote API may send as a string, a number
// or null. It always marshals back as a string.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Field(n.String())
	return nil
}

func (f Field) String() string {
	return string(f)
}

// ScheduleEntry is one class slot returned by the schedule API.
type ScheduleEntry struct {
	Period       Field `json:"periodo"`
	RFC          Field `json:"rfc"`
	ScheduleType Field `json:"tipo_horario"`
	Weekday      Field `json:"dia_semana"`
	StartTime    Field `json:"hora_inicial"`
	EndTime      Field `json:"hora_final"`
	Subject      Field `json:"materia"`
	Group        Field `json:"grupo"`
	Room         Field `json:"aula"`
}

// Cells returns the entry values in column order.
func (e ScheduleEntry) Cells() []string {
	return []string{
		e.Period.String(),
		e.RFC.String(),
		e.ScheduleType.String(),
		e.Weekday.String(),
		e.StartTime.String(),
		e.EndTime.String(),
		e.Subject.String(),
		e.Group.String(),
		e.Room.String(),
	}
}

// ScheduleColumns are the column headers used by every schedule rendering.
var ScheduleColumns = []string{
	"Periodo",
	"RFC",
	"Tipo Horario",
	"Día",
	"Hora Inicio",
	"Hora Final",
	"Materia",
	"Grupo",
	"Aula",
}

// ScheduleTitle heads every schedule document.
const ScheduleTitle = "Horarios de Clases"

type LoadScheduleRequest struct {
	ControlNumber string `json:"control_number" validate:"required,max=64,controlnumber"`
	Password      string `json:"password" validate:"required,max=256" redact:"true"`
}
