package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// ── 测试辅助 ──

func newTestRepo() *Repository {
	return NewRepository(NewMemoryStore())
}

func mustCreateCollege(t *testing.T, repo *Repository, name string) *model.College {
	t.Helper()
	college, err := repo.College.Create(context.Background(), &model.CreateCollegeData{Name: name})
	if err != nil {
		t.Fatalf("创建学院应成功: %v", err)
	}
	return college
}

func mustCreateSemester(t *testing.T, repo *Repository, collegeID, name string) *model.Semester {
	t.Helper()
	semester, err := repo.Semester.Create(context.Background(), collegeID, &model.CreateSemesterData{
		Name:      name,
		Type:      model.SemesterFall,
		Year:      2026,
		Status:    model.SemesterCurrent,
		StartDate: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("创建学期应成功: %v", err)
	}
	return semester
}

func mustCreateClass(t *testing.T, repo *Repository, collegeID, semesterID, name string, credits int) *model.Class {
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

func mustCreateAssignment(t *testing.T, repo *Repository, collegeID, semesterID, classID, title string, due time.Time) *model.Assignment {
	t.Helper()
	assignment, err := repo.Assignment.Create(context.Background(), collegeID, semesterID, classID, &model.CreateAssignmentData{
		Title:    title,
		Type:     model.TypeHomework,
		Status:   model.AssignmentNotStarted,
		Priority: model.PriorityMedium,
		DueDate:  due,
	})
	if err != nil {
		t.Fatalf("创建作业应成功: %v", err)
	}
	return assignment
}

// ── 学院 CRUD ──

func TestCollegeRepo_CreateAndGet(t *testing.T) {
	repo := newTestRepo()

	college := mustCreateCollege(t, repo, "州立大学")
	if college.ID == "" {
		t.Fatal("新学院应分配 ID")
	}
	if college.TotalCredits != 0 {
		t.Errorf("新学院学分合计应为 0，实际=%d", college.TotalCredits)
	}

	got, err := repo.College.GetByID(context.Background(), college.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Name != "州立大学" {
		t.Errorf("期望Name=州立大学，实际=%s", got.Name)
	}
}

func TestCollegeRepo_GetMissing(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.College.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("期望 ErrCollegeNotFound，实际: %v", err)
	}
}

func TestCollegeRepo_UpdatePartial(t *testing.T) {
	repo := newTestRepo()
	college := mustCreateCollege(t, repo, "州立大学")

	abbr := "SU"
	if err := repo.College.Update(context.Background(), college.ID, &model.UpdateCollegeData{Abbreviation: &abbr}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, _ := repo.College.GetByID(context.Background(), college.ID)
	if got.Abbreviation != "SU" {
		t.Errorf("期望Abbreviation=SU，实际=%s", got.Abbreviation)
	}
	// 未提供的字段保持原值
	if got.Name != "州立大学" {
		t.Errorf("Name 不应被清空，实际=%s", got.Name)
	}
}

func TestCollegeRepo_DeleteCascades(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	if err := repo.College.Delete(ctx, college.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	if _, err := repo.College.GetByID(ctx, college.ID); !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("删除后 GetByID 应返回 ErrCollegeNotFound，实际: %v", err)
	}
	if _, err := repo.Semester.GetByID(ctx, college.ID, semester.ID); !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("级联后学期也应不可达，实际: %v", err)
	}
}

// ── 删除缺失实体的约定 ──

func TestDelete_MissingLeafIsNoop(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	class := mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	// 末级不存在：静默成功
	if err := repo.Class.Delete(ctx, college.ID, semester.ID, "no-such-class"); err != nil {
		t.Errorf("删除不存在的课程应为空操作，实际: %v", err)
	}
	if err := repo.Assignment.Delete(ctx, college.ID, semester.ID, class.ID, "no-such-assignment"); err != nil {
		t.Errorf("删除不存在的作业应为空操作，实际: %v", err)
	}

	// 祖先不存在：报祖先的未找到错误
	if err := repo.Class.Delete(ctx, "no-such-college", semester.ID, class.ID); !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("期望 ErrCollegeNotFound，实际: %v", err)
	}
	if err := repo.Assignment.Delete(ctx, college.ID, semester.ID, "no-such-class", "x"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound，实际: %v", err)
	}

	// 原有数据不受影响
	if _, err := repo.Class.GetByID(ctx, college.ID, semester.ID, class.ID); err != nil {
		t.Errorf("原课程应仍然存在: %v", err)
	}
}

// ── 学分联动 ──

func TestCredits_AggregateOnClassMutations(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")

	first := mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	got, _ := repo.Semester.GetByID(ctx, college.ID, semester.ID)
	if got.TotalCredits != 4 {
		t.Fatalf("期望学期学分=4，实际=%d", got.TotalCredits)
	}

	mustCreateClass(t, repo, college.ID, semester.ID, "线性代数", 3)

	got, _ = repo.Semester.GetByID(ctx, college.ID, semester.ID)
	if got.TotalCredits != 7 {
		t.Fatalf("期望学期学分=7，实际=%d", got.TotalCredits)
	}
	gotCollege, _ := repo.College.GetByID(ctx, college.ID)
	if gotCollege.TotalCredits != 7 {
		t.Fatalf("期望学院学分=7，实际=%d", gotCollege.TotalCredits)
	}

	if err := repo.Class.Delete(ctx, college.ID, semester.ID, first.ID); err != nil {
		t.Fatalf("删除课程应成功: %v", err)
	}

	got, _ = repo.Semester.GetByID(ctx, college.ID, semester.ID)
	if got.TotalCredits != 3 {
		t.Fatalf("删除后期望学期学分=3，实际=%d", got.TotalCredits)
	}
	gotCollege, _ = repo.College.GetByID(ctx, college.ID)
	if gotCollege.TotalCredits != 3 {
		t.Fatalf("删除后期望学院学分=3，实际=%d", gotCollege.TotalCredits)
	}
}

func TestCredits_UpdateClassCredits(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	class := mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	credits := 2
	if err := repo.Class.Update(ctx, college.ID, semester.ID, class.ID, &model.UpdateClassData{Credits: &credits}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, _ := repo.Semester.GetByID(ctx, college.ID, semester.ID)
	if got.TotalCredits != 2 {
		t.Errorf("期望学期学分=2，实际=%d", got.TotalCredits)
	}
}

func TestCredits_SemesterDeleteRecalcsCollege(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	fall := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	spring := mustCreateSemester(t, repo, college.ID, "2027 春季")
	mustCreateClass(t, repo, college.ID, fall.ID, "数据结构", 4)
	mustCreateClass(t, repo, college.ID, spring.ID, "操作系统", 3)

	if err := repo.Semester.Delete(ctx, college.ID, fall.ID); err != nil {
		t.Fatalf("删除学期应成功: %v", err)
	}

	got, _ := repo.College.GetByID(ctx, college.ID)
	if got.TotalCredits != 3 {
		t.Errorf("期望学院学分=3，实际=%d", got.TotalCredits)
	}
}

// ── 时间戳联动 ──

func TestTimestamps_AssignmentTouchesAncestors(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	class := mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	before, _ := repo.Class.GetByID(ctx, college.ID, semester.ID, class.ID)
	time.Sleep(5 * time.Millisecond)

	mustCreateAssignment(t, repo, college.ID, semester.ID, class.ID, "作业一", time.Now().Add(72*time.Hour))

	after, _ := repo.Class.GetByID(ctx, college.ID, semester.ID, class.ID)
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Error("创建作业后课程的 UpdatedAt 应被刷新")
	}
}

// ── 作业部分更新 ──

func TestAssignmentRepo_UpdatePreservesMissingFields(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	class := mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)
	assignment := mustCreateAssignment(t, repo, college.ID, semester.ID, class.ID, "作业一", time.Now().Add(72*time.Hour))

	status := model.AssignmentCompleted
	if err := repo.Assignment.Update(ctx, college.ID, semester.ID, class.ID, assignment.ID, &model.UpdateAssignmentData{Status: &status}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, _ := repo.Assignment.GetByID(ctx, college.ID, semester.ID, class.ID, assignment.ID)
	if got.Status != model.AssignmentCompleted {
		t.Errorf("期望Status=completed，实际=%s", got.Status)
	}
	if got.Title != "作业一" {
		t.Errorf("Title 不应被清空，实际=%s", got.Title)
	}
	if !got.DueDate.Equal(assignment.DueDate) {
		t.Errorf("DueDate 不应改变，实际=%v", got.DueDate)
	}
}

// ── 设置 ──

func TestSettingsRepo_DefaultsAndPartialUpdate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	settings, err := repo.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if settings.Academic.DefaultCredits != 3 {
		t.Errorf("默认学分应为 3，实际=%d", settings.Academic.DefaultCredits)
	}
	if settings.Academic.GradeScale.APlus != 97 {
		t.Errorf("A+ 默认阈值应为 97，实际=%v", settings.Academic.GradeScale.APlus)
	}

	theme := "dark"
	updated, err := repo.Settings.Update(ctx, &model.UpdateSettingsData{Theme: &theme})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Theme != "dark" {
		t.Errorf("期望Theme=dark，实际=%s", updated.Theme)
	}
	if updated.Academic.DefaultCredits != 3 {
		t.Errorf("未提供的设置应保持默认，实际=%d", updated.Academic.DefaultCredits)
	}
}

// ── 整图快照与替换 ──

func TestDataRepo_SnapshotIsIsolated(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	college := mustCreateCollege(t, repo, "州立大学")

	snapshot, err := repo.Data.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot 应成功: %v", err)
	}
	snapshot.Colleges[0].Name = "被改名"

	got, _ := repo.College.GetByID(ctx, college.ID)
	if got.Name != "州立大学" {
		t.Error("修改快照不应影响存储中的数据")
	}
}

func TestDataRepo_Replace(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	mustCreateCollege(t, repo, "旧学院")

	replacement := &model.AppData{
		Colleges: []model.College{
			{BaseEntity: model.NewBaseEntity(), Name: "新学院", Semesters: []model.Semester{}},
		},
		Settings: model.DefaultSettings(),
	}
	if err := repo.Data.Replace(ctx, replacement); err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}

	colleges, _ := repo.College.List(ctx)
	if len(colleges) != 1 || colleges[0].Name != "新学院" {
		t.Errorf("替换后应只有新学院，实际=%+v", colleges)
	}
}
