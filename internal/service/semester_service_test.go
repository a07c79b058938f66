package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// ── Create 测试 ──

func TestSemesterService_Create_Success(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")

	req := &dto.CreateSemesterRequest{
		Name:      "2026 秋季",
		Type:      "fall",
		Year:      2026,
		Status:    "upcoming",
		StartDate: "2026-08-24",
		EndDate:   "2026-12-18",
	}

	result, err := svc.Semester.Create(context.Background(), college.ID, req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "2026 秋季" {
		t.Errorf("期望Name=2026 秋季，实际=%s", result.Name)
	}
	if result.TotalCredits != 0 {
		t.Errorf("新学期学分合计应为 0，实际=%d", result.TotalCredits)
	}
}

func TestSemesterService_Create_EndBeforeStart(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")

	req := &dto.CreateSemesterRequest{
		Name:      "倒置学期",
		Type:      "fall",
		Year:      2026,
		Status:    "upcoming",
		StartDate: "2026-12-18",
		EndDate:   "2026-08-24",
	}

	_, err := svc.Semester.Create(context.Background(), college.ID, req)
	if !errors.Is(err, ErrDateRange) {
		t.Errorf("期望 ErrDateRange，实际: %v", err)
	}
}

func TestSemesterService_Create_BadDateFormat(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")

	req := &dto.CreateSemesterRequest{
		Name:      "测试学期",
		Type:      "fall",
		Year:      2026,
		Status:    "upcoming",
		StartDate: "not-a-date",
		EndDate:   "2026-12-18",
	}

	_, err := svc.Semester.Create(context.Background(), college.ID, req)
	if !errors.Is(err, ErrDateInvalid) {
		t.Errorf("期望 ErrDateInvalid，实际: %v", err)
	}
}

func TestSemesterService_Create_MissingCollege(t *testing.T) {
	svc, _ := newTestService()

	req := &dto.CreateSemesterRequest{
		Name:      "2026 秋季",
		Type:      "fall",
		Year:      2026,
		Status:    "upcoming",
		StartDate: "2026-08-24",
		EndDate:   "2026-12-18",
	}

	_, err := svc.Semester.Create(context.Background(), "no-such-college", req)
	if !errors.Is(err, repository.ErrCollegeNotFound) {
		t.Errorf("期望 ErrCollegeNotFound，实际: %v", err)
	}
}

// ── 按学年顺序排序 ──

func TestSemesterService_List_ChronoSort(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	college := seedCollege(t, repo, "州立大学")

	// 故意乱序插入
	seedSemester(t, repo, college.ID, &model.CreateSemesterData{
		Name: "2027 春季", Type: model.SemesterSpring, Year: 2027, Status: model.SemesterUpcoming,
		StartDate: time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC),
	})
	seedSemester(t, repo, college.ID, &model.CreateSemesterData{
		Name: "2026 秋季", Type: model.SemesterFall, Year: 2026, Status: model.SemesterCurrent,
		StartDate: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
	})
	seedSemester(t, repo, college.ID, &model.CreateSemesterData{
		Name: "2026 夏季", Type: model.SemesterSummer, Year: 2026, Status: model.SemesterCompleted,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	})

	sorted, err := svc.Semester.List(ctx, college.ID, true)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(sorted) != 3 {
		t.Fatalf("期望 3 个学期，实际=%d", len(sorted))
	}
	wantOrder := []string{"2026 夏季", "2026 秋季", "2027 春季"}
	for i, want := range wantOrder {
		if sorted[i].Name != want {
			t.Errorf("位置 %d 期望 %s，实际=%s", i, want, sorted[i].Name)
		}
	}
}

// ── GetCurrent ──

func TestSemesterService_GetCurrent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	college := seedCollege(t, repo, "州立大学")

	seedSemester(t, repo, college.ID, &model.CreateSemesterData{
		Name: "2026 夏季", Type: model.SemesterSummer, Year: 2026, Status: model.SemesterCompleted,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	})
	current := seedFallSemester(t, repo, college.ID)

	got, err := svc.Semester.GetCurrent(ctx, college.ID)
	if err != nil {
		t.Fatalf("GetCurrent 应成功: %v", err)
	}
	if got.ID != current.ID {
		t.Errorf("期望当前学期=%s，实际=%s", current.ID, got.ID)
	}
}

func TestSemesterService_GetCurrent_None(t *testing.T) {
	svc, repo := newTestService()
	college := seedCollege(t, repo, "州立大学")

	_, err := svc.Semester.GetCurrent(context.Background(), college.ID)
	if !errors.Is(err, repository.ErrSemesterNotFound) {
		t.Errorf("无进行中学期时期望 ErrSemesterNotFound，实际: %v", err)
	}
}

// ── Update 日期校验 ──

func TestSemesterService_Update_RejectsInvertedDates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	college := seedCollege(t, repo, "州立大学")
	semester := seedFallSemester(t, repo, college.ID)

	start := "2026-12-18"
	end := "2026-08-24"
	_, err := svc.Semester.Update(ctx, college.ID, semester.ID, &dto.UpdateSemesterRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	if !errors.Is(err, ErrDateRange) {
		t.Errorf("期望 ErrDateRange，实际: %v", err)
	}

	// 校验失败不应落盘
	got, _ := svc.Semester.GetByID(ctx, college.ID, semester.ID)
	if !got.StartDate.Equal(semester.StartDate) {
		t.Error("校验失败后原日期不应改变")
	}
}
