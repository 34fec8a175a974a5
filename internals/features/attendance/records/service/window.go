// file: internals/features/attendance/records/service/window.go
package service

import "time"

/* ===================== Enums (Go-side) ===================== */

type WindowState string

const (
	WindowNotStarted WindowState = "not_started"
	WindowOpen       WindowState = "open"
	WindowClosed     WindowState = "closed"
	WindowUnbounded  WindowState = "unbounded"
)

// EvaluateAttendanceWindow mengklasifikasi "now" terhadap jendela absensi.
// Salah satu batas kosong → unbounded (tidak ada penolakan berbasis waktu;
// fallback "hari yang sama" adalah urusan pemanggil, bukan evaluator ini).
// Batas inklusif dua-duanya: now == start dan now == end masih open.
func EvaluateAttendanceWindow(start, end *time.Time, now time.Time) WindowState {
	if start == nil || end == nil {
		return WindowUnbounded
	}
	if now.Before(*start) {
		return WindowNotStarted
	}
	if now.After(*end) {
		return WindowClosed
	}
	return WindowOpen
}
