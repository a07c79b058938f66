package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/chiefpansancolt/college-buddy/internal/dto"
	"github.com/chiefpansancolt/college-buddy/internal/model"
	"github.com/chiefpansancolt/college-buddy/internal/repository"
)

// CollegeService 学校业务接口
type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*model.College, error)
	GetByID(ctx context.Context, id string) (*model.College, error)
	List(ctx context.Context) ([]model.College, error)
	Update(ctx context.Context, id string, req *dto.UpdateCollegeRequest) (*model.College, error)
	Delete(ctx context.Context, id string) error
}

type collegeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCollegeService 创建 CollegeService 实例
func NewCollegeService(repo *repository.Repository, logger *zap.Logger) CollegeService {
	return &collegeService{repo: repo, logger: logger}
}

func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*model.College, error) {
	college, err := s.repo.College.Create(ctx, &model.CreateCollegeData{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Website:      req.Website,
		Location:     req.Location,
		OverallGPA:   req.OverallGPA,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("创建学校", zap.String("college_id", college.ID), zap.String("name", college.Name))
	return college, nil
}

func (s *collegeService) GetByID(ctx context.Context, id string) (*model.College, error) {
	return s.repo.College.GetByID(ctx, id)
}

func (s *collegeService) List(ctx context.Context) ([]model.College, error) {
	return s.repo.College.List(ctx)
}

func (s *collegeService) Update(ctx context.Context, id string, req *dto.UpdateCollegeRequest) (*model.College, error) {
	err := s.repo.College.Update(ctx, id, &model.UpdateCollegeData{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Website:      req.Website,
		Location:     req.Location,
		OverallGPA:   req.OverallGPA,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.College.GetByID(ctx, id)
}

func (s *collegeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.College.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("删除学校（级联删除名下学期/课程/作业）", zap.String("college_id", id))
	return nil
}
