package dateutils

import "time"

// BusinessDaysBetween conta os dias úteis no intervalo [start, end],
// inclusivo nas duas pontas, pulando sábado e domingo. Sem calendário de
// feriados e sem normalização de fuso. Retorna 0 quando end antecede start.
func BusinessDaysBetween(start, end time.Time) int {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if endDay.Before(startDay) {
		return 0
	}
	count := 0
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if isBusinessDay(day) {
			count++
		}
	}
	return count
}

// BusinessDaysFromNow conta os dias úteis entre a data informada e agora.
func BusinessDaysFromNow(date time.Time) int {
	return BusinessDaysBetween(date, time.Now())
}

// IsWithinDeadline indica se a data ainda está dentro do prazo em dias úteis.
// Data nula é tratada como dentro do prazo (verdade vazia).
func IsWithinDeadline(date *time.Time, deadlineDays int) bool {
	if date == nil {
		return true
	}
	return BusinessDaysFromNow(*date) <= deadlineDays
}

func isBusinessDay(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
