package repository

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	data := emptyAppData()
	college := model.College{
		BaseEntity: model.NewBaseEntity(),
		Name:       "州立大学",
		Semesters:  []model.Semester{},
	}
	data.Colleges = append(data.Colleges, college)
	store.Save(data)

	loaded := store.Load()
	if len(loaded.Colleges) != 1 {
		t.Fatalf("期望 1 个学院，实际=%d", len(loaded.Colleges))
	}
	if loaded.Colleges[0].ID != college.ID {
		t.Errorf("ID 应在存取后保持不变，实际=%s", loaded.Colleges[0].ID)
	}
	if !loaded.Colleges[0].CreatedAt.Equal(college.CreatedAt) {
		t.Errorf("CreatedAt 应在存取后保持等价时刻，实际=%v", loaded.Colleges[0].CreatedAt)
	}
	if loaded.LastUpdated.IsZero() {
		t.Error("Save 应写入 LastUpdated")
	}
}

func TestMemoryStore_EmptyLoad(t *testing.T) {
	store := NewMemoryStore()

	loaded := store.Load()
	if loaded.Colleges == nil || len(loaded.Colleges) != 0 {
		t.Errorf("从空存储加载应得到空学院列表，实际=%+v", loaded.Colleges)
	}
	if loaded.Settings.Academic.DefaultCredits != 3 {
		t.Errorf("空存储应携带默认设置，实际=%d", loaded.Settings.Academic.DefaultCredits)
	}
}

// 存储载荷必须保持旧版 Web 端的 camelCase 字段名，否则历史导出无法导入
func TestStoragePayload_FieldNames(t *testing.T) {
	repo := NewRepository(NewMemoryStore())
	ctx := context.Background()

	college, err := repo.College.Create(ctx, &model.CreateCollegeData{Name: "州立大学"})
	if err != nil {
		t.Fatalf("创建学院应成功: %v", err)
	}
	semester := mustCreateSemester(t, repo, college.ID, "2026 秋季")
	mustCreateClass(t, repo, college.ID, semester.ID, "数据结构", 4)

	data, _ := repo.Data.Snapshot(ctx)
	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("序列化应成功: %v", err)
	}

	text := string(payload)
	for _, key := range []string{
		`"colleges"`, `"semesters"`, `"classes"`, `"assignments"`,
		`"totalCredits"`, `"createdAt"`, `"updatedAt"`, `"startDate"`, `"endDate"`,
		`"settings"`, `"lastUpdated"`, `"gradeScale"`, `"defaultCredits"`,
	} {
		if !strings.Contains(text, key) {
			t.Errorf("载荷缺少字段 %s", key)
		}
	}
}

func TestStorageKey_Fixed(t *testing.T) {
	if StorageKey != "college-tracker-data" {
		t.Errorf("存储键不可变更，实际=%s", StorageKey)
	}
}

func TestMemoryStore_CorruptPayload(t *testing.T) {
	store := &memoryStore{payload: []byte("{not json")}

	loaded := store.Load()
	if loaded == nil || len(loaded.Colleges) != 0 {
		t.Error("损坏载荷应降级为空图而不是崩溃")
	}
}
