package calendars

// DefaultSystems returns every built-in calendar system in registry order.
// The Chinese converter shares the given year cache; pass
// NewMemoryYearCache() for a self-contained set.
func DefaultSystems(cache YearCache) []System {
	return []System{
		NewGregorian(),
		NewJulian(),
		NewIslamic(),
		NewHebrew(),
		NewPersian(),
		NewChinese(cache),
		NewEthiopian(),
		NewCoptic(),
		NewIndianSaka(),
		NewBahai(),
		NewThaiBuddhist(),
		NewMayanTzolkin(),
		NewMayanHaab(),
		NewMayanLongCount(),
		NewCherokee(),
		NewIroquois(),
		NewAztecXiuhpohualli(),
	}
}
