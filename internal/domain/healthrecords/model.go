package healthrecords

import "time"

// RecordType es libre (hasta MaxTypeLen); estos son los valores habituales.
type RecordType string

const (
	TypeAllergy    RecordType = "allergy"
	TypeIllness    RecordType = "illness"
	TypeSurgery    RecordType = "surgery"
	TypeVaccine    RecordType = "vaccine"
	TypeMedication RecordType = "medication"
	TypeCheckup    RecordType = "checkup"
)

const (
	MaxTypeLen  = 50
	MaxTitleLen = 200

	// RecordDateLayout es el formato de record_date en la API.
	RecordDateLayout = "2006-01-02"
)

// Record es una entrada de la libreta sanitaria de la mascota.
// RecordDate es la fecha del hecho (sin hora); CreatedAt, cuándo se cargó.
type Record struct {
	ID        int64
	PersonaID int64

	Type        RecordType
	Title       string
	Description string
	RecordDate  time.Time

	CreatedAt time.Time
}
