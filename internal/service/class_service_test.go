package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

func TestClassService_Create_DefaultColor(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	college := seedCollege(t, repo, "州立大学")
	fall := seedFallSemester(t, repo, college.ID)

	class, err := svc.Class.Create(ctx, college.ID, fall.ID, classRequest("数据结构", 4))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if class.Color != model.DefaultClassColor {
		t.Errorf("未指定颜色时应使用默认色，实际=%s", class.Color)
	}
}

func TestClassService_Create_RejectsBadSchedule(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	college := seedCollege(t, repo, "州立大学")
	fall := seedFallSemester(t, repo, college.ID)

	cases := []dto.ScheduleSlotRequest{
		{DayOfWeek: 1, StartTime: "9 点", EndTime: "10:15", Type: "lecture"},   // 非 HH:MM
		{DayOfWeek: 1, StartTime: "10:15", EndTime: "09:00", Type: "lecture"}, // 结束早于开始
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00", Type: "lecture"}, // 零时长
	}
	for i, slot := range cases {
		req := classRequest("数据结构", 4)
		req.Schedule = []dto.ScheduleSlotRequest{slot}
		if _, err := svc.Class.Create(ctx, college.ID, fall.ID, req); !errors.Is(err, ErrScheduleInvalid) {
			t.Errorf("用例 %d 期望 ErrScheduleInvalid，实际: %v", i, err)
		}
	}
}

func TestClassService_ListActive_FiltersStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	college := seedCollege(t, repo, "州立大学")
	fall := seedFallSemester(t, repo, college.ID)

	active := seedClass(t, repo, college.ID, fall.ID, "数据结构", 4)
	dropped, err := repo.Class.Create(ctx, college.ID, fall.ID, &model.CreateClassData{
		Name: "被退课程", Credits: 3, Status: model.ClassDropped,
	})
	if err != nil {
		t.Fatalf("创建课程应成功: %v", err)
	}

	classes, err := svc.Class.ListActive(ctx, college.ID, fall.ID)
	if err != nil {
		t.Fatalf("ListActive 应成功: %v", err)
	}
	if len(classes) != 1 || classes[0].ID != active.ID {
		t.Errorf("期望仅返回进行中课程 %s，实际=%+v", active.ID, classes)
	}
	_ = dropped
}

// 学期不存在时返回空列表而非错误，调用方无需区分
func TestClassService_ListActive_MissingSemester(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")

	classes, err := svc.Class.ListActive(context.Background(), college.ID, "no-such-semester")
	if err != nil {
		t.Fatalf("ListActive 不应报错: %v", err)
	}
	if classes == nil || len(classes) != 0 {
		t.Errorf("期望空列表，实际=%+v", classes)
	}
}

func TestClassService_Update_ReplacesSchedule(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	college := seedCollege(t, repo, "州立大学")
	fall := seedFallSemester(t, repo, college.ID)

	req := classRequest("数据结构", 4)
	req.Schedule = []dto.ScheduleSlotRequest{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:15", Type: "lecture"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "10:15", Type: "lecture"},
	}
	class, err := svc.Class.Create(ctx, college.ID, fall.ID, req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	updated, err := svc.Class.Update(ctx, college.ID, fall.ID, class.ID, &dto.UpdateClassRequest{
		Schedule: []dto.ScheduleSlotRequest{
			{DayOfWeek: 5, StartTime: "14:00", EndTime: "16:00", Type: "lab"},
		},
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if len(updated.Schedule) != 1 || updated.Schedule[0].DayOfWeek != 5 {
		t.Errorf("课表应整体替换，实际=%+v", updated.Schedule)
	}
}

func TestClassService_GetByID_MissingClass(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")
	fall := seedFallSemester(t, repo, college.ID)

	_, err := svc.Class.GetByID(context.Background(), college.ID, fall.ID, "no-such-class")
	if !errors.Is(err, repository.ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound，实际: %v", err)
	}
}
