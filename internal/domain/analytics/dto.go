package analytics

// AttendanceRow - per-teacher counts for a week or month period, ordered
// by percentage (nil percentage last)
type AttendanceRow struct {
	TeacherName  string `json:"teacher_name"`
	TotalLessons int    `json:"total_lessons"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	Late         int    `json:"late"`
	Partial      int    `json:"partial"`
	Percentage   *int   `json:"percentage"`
}

type SubjectDistributionRow struct {
	SubjectName   string `json:"subject_name"`
	TotalLessons  int    `json:"total_lessons"`
	TeachersCount int    `json:"teachers_count"`
	Teachers      string `json:"teachers"`
}

// PayrollTrendRow - one fully or partially paid period
type PayrollTrendRow struct {
	WeekNumber     int     `json:"week_number"`
	Year           int     `json:"year"`
	TeachersPaid   int     `json:"teachers_paid"`
	TotalAmount    int64   `json:"total_amount"`
	AveragePayment float64 `json:"average_payment"`
}

type PerformanceRow struct {
	TeacherID         int64   `json:"id"`
	TeacherName       string  `json:"teacher_name"`
	WeeksTaught       int     `json:"weeks_taught"`
	TotalLessons      int     `json:"total_lessons"`
	AttendedLessons   int     `json:"attended_lessons"`
	AttendanceRate    *int    `json:"attendance_rate"`
	TotalEarnings     int64   `json:"total_earnings"`
	AvgWeeklyEarnings float64 `json:"avg_weekly_earnings"`
}
