package calendars

// The eighteen veintenas of the Aztec solar year plus the five nameless
// days of Nemontemi.
var aztecMonthNames = []string{
	"Atlcahualo", "Tlacaxipehualiztli", "Tozoztontli", "Huey Tozoztli",
	"Toxcatl", "Etzalcualiztli", "Tecuilhuitontli", "Huey Tecuilhuitl",
	"Tlaxochimaco", "Xocotl Huetzi", "Ochpaniztli", "Teotleco",
	"Tepeilhuitl", "Quecholli", "Panquetzaliztli", "Atemoztli",
	"Tititl", "Izcalli", "Nemontemi",
}

// NewAztecXiuhpohualli returns the 365-day Aztec solar-cycle converter.
// Structurally the Haab': eighteen 20-day months plus a 5-day remainder,
// counted from the shared Mesoamerican epoch with no leap correction.
func NewAztecXiuhpohualli() System {
	return &cyclicalSystem{
		desc: Descriptor{
			ID:          AztecXiuhpohualli,
			Name:        "Aztec Xiuhpohualli",
			NativeName:  "Xiuhpōhualli",
			Kind:        KindCyclical,
			Months:      19,
			MinYearDays: 365,
			MaxYearDays: 365,
			Epoch:       MayanEpoch,
			MonthNames:  aztecMonthNames,
		},
		cycleDays: 365,
		monthLen:  20,
		lastLen:   5,
	}
}
