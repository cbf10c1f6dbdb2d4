package timezone

import "time"

// O sistema opera em um único fuso (todos os salões no mesmo país).
// O fuso efetivo vem de APP_TIMEZONE; aqui fica só o fallback.
const DefaultTimezone = "America/Sao_Paulo"

var appLocation *time.Location

func init() {
	appLocation, _ = time.LoadLocation(DefaultTimezone)
}

// Configure troca o fuso global da aplicação. Chamado uma vez no boot.
func Configure(tz string) {
	if tz == "" {
		return
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		appLocation = loc
	}
}

func Location() *time.Location {
	return appLocation
}

func Now() time.Time {
	return time.Now().In(appLocation)
}
