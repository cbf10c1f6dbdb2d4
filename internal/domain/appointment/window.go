package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Working Window
// ===============================

// WorkingWindow é a grade de um único dia já resolvida sobre uma data
// concreta (Open/Close/Break como time.Time, não mais "15:04").
type WorkingWindow struct {
	Date   time.Time
	Closed bool

	Open  time.Time
	Close time.Time

	HasBreak   bool
	BreakStart time.Time
	BreakEnd   time.Time
}

// ClosedWindow é o default seguro: sem configuração, o dia está fechado.
func ClosedWindow(date time.Time) WorkingWindow {
	return WorkingWindow{Date: date, Closed: true}
}

// BuildWindow projeta uma linha de working hours sobre a data pedida.
// Linha nula, marcada como fechada ou sem horários → dia fechado.
func BuildWindow(wh *models.WorkingHours, date time.Time) WorkingWindow {
	if wh == nil || wh.Closed || wh.OpenTime == "" || wh.CloseTime == "" {
		return ClosedWindow(date)
	}

	open, okOpen := parseHM(wh.OpenTime, date)
	close, okClose := parseHM(wh.CloseTime, date)
	if !okOpen || !okClose || !open.Before(close) {
		return ClosedWindow(date)
	}

	w := WorkingWindow{
		Date:  date,
		Open:  open,
		Close: close,
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		bs, okBS := parseHM(wh.BreakStart, date)
		be, okBE := parseHM(wh.BreakEnd, date)
		if okBS && okBE {
			// A pausa vale só dentro do expediente; o que sobra fora
			// dele não bloqueia nada.
			if bs.Before(open) {
				bs = open
			}
			if be.After(close) {
				be = close
			}
			if bs.Before(be) {
				w.HasBreak = true
				w.BreakStart = bs
				w.BreakEnd = be
			}
		}
	}

	return w
}

func parseHM(hm string, date time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}

// Contains verifica se [start, end) cabe no expediente sem invadir a pausa.
func (w WorkingWindow) Contains(start, end time.Time) bool {
	if w.Closed {
		return false
	}
	if start.Before(w.Open) || end.After(w.Close) {
		return false
	}
	if w.HasBreak && start.Before(w.BreakEnd) && end.After(w.BreakStart) {
		return false
	}
	return true
}
