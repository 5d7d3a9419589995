package ports

import "time"

// Clock fuente de tiempo y zona horaria del negocio, inyectada en los casos de uso.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

// SystemClock reloj real en la zona indicada.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Loc: loc}
}

// FixedClock reloj detenido en t; útil en tests.
func FixedClock(t time.Time) Clock {
	return Clock{Now: func() time.Time { return t }, Loc: t.Location()}
}
