package model

// ── 派生学分求和（纯函数，无副作用） ──

// TotalClassCredits 课程学分之和 → Semester.TotalCredits
func TotalClassCredits(classes []Class) int {
	total := 0
	for _, c := range classes {
		total += c.Credits
	}
	return total
}

// TotalSemesterCredits 学期学分之和 → College.TotalCredits
func TotalSemesterCredits(semesters []Semester) int {
	total := 0
	for _, s := range semesters {
		total += s.TotalCredits
	}
	return total
}
