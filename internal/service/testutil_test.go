package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// ── 测试辅助 ──
//
// Service 测试跑在真实 Repository + 内存存储之上：
// 层级定位、学分联动等不变量由仓储层保证，mock 会把它们一并模拟掉

func newTestService() (*Service, *repository.Repository) {
	repo := repository.NewRepository(repository.NewMemoryStore())
	return NewService(repo, zap.NewNop()), repo
}

func seedCollege(t *testing.T, repo *repository.Repository, name string) *model.College {
	t.Helper()
	college, err := repo.College.Create(context.Background(), &model.CreateCollegeData{Name: name})
	if err != nil {
		t.Fatalf("创建学院应成功: %v", err)
	}
	return college
}

func seedSemester(t *testing.T, repo *repository.Repository, collegeID string, data *model.CreateSemesterData) *model.Semester {
	t.Helper()
	semester, err := repo.Semester.Create(context.Background(), collegeID, data)
	if err != nil {
		t.Fatalf("创建学期应成功: %v", err)
	}
	return semester
}

func seedFallSemester(t *testing.T, repo *repository.Repository, collegeID string) *model.Semester {
	t.Helper()
	return seedSemester(t, repo, collegeID, &model.CreateSemesterData{
		Name:      "2026 秋季",
		Type:      model.SemesterFall,
		Year:      2026,
		Status:    model.SemesterCurrent,
		StartDate: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
	})
}

func seedClass(t *testing.T, repo *repository.Repository, collegeID, semesterID, name string, credits int) *model.Class {
	t.Helper()
	class, err := repo.Class.Create(context.Background(), collegeID, semesterID, &model.CreateClassData{
		Name:    name,
		Credits: credits,
		Status:  model.ClassActive,
	})
	if err != nil {
		t.Fatalf("创建课程应成功: %v", err)
	}
	return class
}

func seedAssignment(t *testing.T, repo *repository.Repository, collegeID, semesterID, classID, title string, due time.Time, status model.AssignmentStatus) *model.Assignment {
	t.Helper()
	assignment, err := repo.Assignment.Create(context.Background(), collegeID, semesterID, classID, &model.CreateAssignmentData{
		Title:    title,
		Type:     model.TypeHomework,
		Status:   status,
		Priority: model.PriorityMedium,
		DueDate:  due,
	})
	if err != nil {
		t.Fatalf("创建作业应成功: %v", err)
	}
	return assignment
}

// classRequest 最小可用的创建课程请求
func classRequest(name string, credits int) *dto.CreateClassRequest {
	return &dto.CreateClassRequest{
		Name:       name,
		CourseCode: "CS-101",
		Credits:    credits,
		Instructor: "张教授",
		Status:     "active",
	}
}
