package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pocotu/sgf-backend-sub000/internal/dto"
)

var heading = color.New(color.FgYellow, color.Bold)

func renderRanking(w io.Writer, r *dto.GroupRankingResponse) {
	title := "Ranking general"
	if r.GroupID != nil {
		title = fmt.Sprintf("Ranking del grupo %d", *r.GroupID)
	}
	if r.EvaluationID != nil {
		title += fmt.Sprintf(" (evaluación %d)", *r.EvaluationID)
	}
	heading.Fprintln(w, "\n"+title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pos", "Código", "Estudiante", "Promedio", "Notas", "Aprob.", "Desaprob."})
	for _, e := range r.Ranking {
		avg := "-"
		if e.Average != nil {
			avg = formatScore(*e.Average)
		}
		table.Append([]string{
			strconv.Itoa(e.Position),
			e.InternalCode,
			e.FullName,
			avg,
			strconv.Itoa(e.TotalGrades),
			strconv.Itoa(e.CoursesPassed),
			strconv.Itoa(e.CoursesFailed),
		})
	}
	table.Render()

	st := r.Statistics
	heading.Fprintln(w, "\nEstadísticas")
	stats := tablewriter.NewWriter(w)
	stats.SetHeader([]string{"Estudiantes", "Promedio", "Mejor", "Peor", "Aprobados", "Desaprobados", "Tasa %"})
	stats.Append([]string{
		strconv.Itoa(st.StudentCount),
		formatScore(st.GroupAverage),
		formatScore(st.BestAverage),
		formatScore(st.WorstAverage),
		strconv.Itoa(st.PassedCount),
		strconv.Itoa(st.FailedCount),
		formatScore(st.PassRate),
	})
	stats.Render()
}

func renderAttendance(w io.Writer, groupID int, rows []dto.AttendanceSummaryResponse) {
	heading.Fprintf(w, "\nAsistencia del grupo %d\n", groupID)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Estudiante", "Clases", "Presente", "Tarde", "Falta", "Asistencia %"})
	for _, a := range rows {
		table.Append([]string{
			strconv.Itoa(a.StudentID),
			strconv.Itoa(a.TotalClasses),
			strconv.Itoa(a.Present),
			strconv.Itoa(a.Late),
			strconv.Itoa(a.Absent),
			formatScore(a.AttendancePercentage),
		})
	}
	table.Render()
}

func renderDaily(w io.Writer, groupID int, days []dto.DailyAttendanceResponse) {
	heading.Fprintf(w, "\nAsistencia diaria del grupo %d\n", groupID)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Fecha", "Estudiantes", "Presente", "Tarde", "Falta", "Asistencia %"})
	for _, d := range days {
		table.Append([]string{
			d.ClassDate,
			strconv.Itoa(d.TotalStudents),
			strconv.Itoa(d.Present),
			strconv.Itoa(d.Late),
			strconv.Itoa(d.Absent),
			formatScore(d.AttendancePercentage),
		})
	}
	table.Render()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
