package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// ClassService 课程业务接口
type ClassService interface {
	Create(ctx context.Context, collegeID, semesterID string, req *dto.CreateClassRequest) (*model.Class, error)
	GetByID(ctx context.Context, collegeID, semesterID, id string) (*model.Class, error)
	List(ctx context.Context, collegeID, semesterID string) ([]model.Class, error)
	// ListActive 返回指定学期内状态为 active 的课程；学期不存在时返回空列表
	ListActive(ctx context.Context, collegeID, semesterID string) ([]model.Class, error)
	Update(ctx context.Context, collegeID, semesterID, id string, req *dto.UpdateClassRequest) (*model.Class, error)
	Delete(ctx context.Context, collegeID, semesterID, id string) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, collegeID, semesterID string, req *dto.CreateClassRequest) (*model.Class, error) {
	schedule, err := convertSchedule(req.Schedule)
	if err != nil {
		return nil, err
	}

	class, err := s.repo.Class.Create(ctx, collegeID, semesterID, &model.CreateClassData{
		Name:            req.Name,
		CourseCode:      req.CourseCode,
		Section:         req.Section,
		Credits:         req.Credits,
		Instructor:      req.Instructor,
		InstructorEmail: req.InstructorEmail,
		Status:          model.ClassStatus(req.Status),
		Schedule:        schedule,
		Syllabus:        req.Syllabus,
		Description:     req.Description,
		OfficeHours:     req.OfficeHours,
		CurrentGrade:    req.CurrentGrade,
		TargetGrade:     req.TargetGrade,
		Color:           req.Color,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("创建课程",
		zap.String("semester_id", semesterID),
		zap.String("class_id", class.ID),
		zap.String("course_code", class.CourseCode),
		zap.Int("credits", class.Credits),
	)
	return class, nil
}

func (s *classService) GetByID(ctx context.Context, collegeID, semesterID, id string) (*model.Class, error) {
	return s.repo.Class.GetByID(ctx, collegeID, semesterID, id)
}

func (s *classService) List(ctx context.Context, collegeID, semesterID string) ([]model.Class, error) {
	return s.repo.Class.List(ctx, collegeID, semesterID)
}

func (s *classService) ListActive(ctx context.Context, collegeID, semesterID string) ([]model.Class, error) {
	classes, err := s.repo.Class.List(ctx, collegeID, semesterID)
	if err != nil {
		// 学期/学校不存在 → 空列表而非错误（与旧版行为一致）
		return []model.Class{}, nil
	}
	active := []model.Class{}
	for _, c := range classes {
		if c.Status == model.ClassActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *classService) Update(ctx context.Context, collegeID, semesterID, id string, req *dto.UpdateClassRequest) (*model.Class, error) {
	schedule, err := convertSchedule(req.Schedule)
	if err != nil {
		return nil, err
	}

	err = s.repo.Class.Update(ctx, collegeID, semesterID, id, &model.UpdateClassData{
		Name:            req.Name,
		CourseCode:      req.CourseCode,
		Section:         req.Section,
		Credits:         req.Credits,
		Instructor:      req.Instructor,
		InstructorEmail: req.InstructorEmail,
		Status:          classStatusPtr(req.Status),
		Schedule:        schedule,
		Syllabus:        req.Syllabus,
		Description:     req.Description,
		OfficeHours:     req.OfficeHours,
		CurrentGrade:    req.CurrentGrade,
		TargetGrade:     req.TargetGrade,
		Color:           req.Color,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Class.GetByID(ctx, collegeID, semesterID, id)
}

func (s *classService) Delete(ctx context.Context, collegeID, semesterID, id string) error {
	if err := s.repo.Class.Delete(ctx, collegeID, semesterID, id); err != nil {
		return err
	}
	s.logger.Info("删除课程（级联删除名下作业）",
		zap.String("semester_id", semesterID),
		zap.String("class_id", id),
	)
	return nil
}
