package model

// ── 应用设置（随数据图整体持久化） ──

// AppSettings 应用设置
type AppSettings struct {
	Theme         string               `json:"theme"`       // light | dark | system
	DefaultView   string               `json:"defaultView"` // calendar | list | kanban
	Notifications NotificationSettings `json:"notifications"`
	Academic      AcademicSettings     `json:"academic"`
}

// NotificationSettings 提醒设置
type NotificationSettings struct {
	AssignmentReminders bool `json:"assignmentReminders"`
	ReminderDaysBefore  int  `json:"reminderDaysBefore"`
	EmailNotifications  bool `json:"emailNotifications"`
	PushNotifications   bool `json:"pushNotifications"`
}

// AcademicSettings 学业设置
type AcademicSettings struct {
	GradeScale         GradeScale `json:"gradeScale"`
	DefaultCredits     int        `json:"defaultCredits"`
	SemesterStartMonth int        `json:"semesterStartMonth"`
}

// GradeScale 百分制 → 等级的分数线
type GradeScale struct {
	APlus  float64 `json:"aPlus"`
	A      float64 `json:"a"`
	AMinus float64 `json:"aMinus"`
	BPlus  float64 `json:"bPlus"`
	B      float64 `json:"b"`
	BMinus float64 `json:"bMinus"`
	CPlus  float64 `json:"cPlus"`
	C      float64 `json:"c"`
	CMinus float64 `json:"cMinus"`
	DPlus  float64 `json:"dPlus"`
	D      float64 `json:"d"`
	F      float64 `json:"f"`
}

// DefaultSettings 初始设置（与旧版 Web 端的默认值保持一致）
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:       "system",
		DefaultView: "list",
		Notifications: NotificationSettings{
			AssignmentReminders: true,
			ReminderDaysBefore:  2,
			EmailNotifications:  false,
			PushNotifications:   true,
		},
		Academic: AcademicSettings{
			GradeScale: GradeScale{
				APlus: 97, A: 93, AMinus: 90,
				BPlus: 87, B: 83, BMinus: 80,
				CPlus: 77, C: 73, CMinus: 70,
				DPlus: 67, D: 63, F: 0,
			},
			DefaultCredits:     3,
			SemesterStartMonth: 8,
		},
	}
}

// UpdateSettingsData 设置的部分更新：nil 字段保留原值
type UpdateSettingsData struct {
	Theme         *string
	DefaultView   *string
	Notifications *NotificationSettings
	Academic      *AcademicSettings
}
