package repository

import (
	"context"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// CollegeRepository 学校数据访问接口
type CollegeRepository interface {
	Create(ctx context.Context, data *model.CreateCollegeData) (*model.College, error)
	GetByID(ctx context.Context, id string) (*model.College, error)
	List(ctx context.Context) ([]model.College, error)
	Update(ctx context.Context, id string, patch *model.UpdateCollegeData) error
	Delete(ctx context.Context, id string) error
}

type collegeRepo struct {
	g *graph
}

func (r *collegeRepo) Create(_ context.Context, data *model.CreateCollegeData) (*model.College, error) {
	college := model.College{
		BaseEntity:   model.NewBaseEntity(),
		Name:         data.Name,
		Abbreviation: data.Abbreviation,
		Website:      data.Website,
		Location:     data.Location,
		OverallGPA:   data.OverallGPA,
		Semesters:    []model.Semester{},
		TotalCredits: 0,
	}

	r.g.write(func(d *model.AppData) bool {
		d.Colleges = append(d.Colleges, college)
		return true
	})

	return &college, nil
}

func (r *collegeRepo) GetByID(_ context.Context, id string) (*model.College, error) {
	var found *model.College
	r.g.read(func(d *model.AppData) {
		found = findCollege(d, id)
	})
	if found == nil {
		return nil, ErrCollegeNotFound
	}
	return found, nil
}

func (r *collegeRepo) List(_ context.Context) ([]model.College, error) {
	var colleges []model.College
	r.g.read(func(d *model.AppData) {
		colleges = d.Colleges
	})
	if colleges == nil {
		colleges = []model.College{}
	}
	return colleges, nil
}

func (r *collegeRepo) Update(_ context.Context, id string, patch *model.UpdateCollegeData) error {
	err := ErrCollegeNotFound
	r.g.write(func(d *model.AppData) bool {
		college := findCollege(d, id)
		if college == nil {
			return false
		}
		if patch.Name != nil {
			college.Name = *patch.Name
		}
		if patch.Abbreviation != nil {
			college.Abbreviation = *patch.Abbreviation
		}
		if patch.Website != nil {
			college.Website = *patch.Website
		}
		if patch.Location != nil {
			college.Location = *patch.Location
		}
		if patch.OverallGPA != nil {
			college.OverallGPA = patch.OverallGPA
		}
		college.Touch()
		err = nil
		return true
	})
	return err
}

// Delete 删除学校并级联删除名下全部学期/课程/作业
// 目标不存在时为空操作（不报错、不写入）
func (r *collegeRepo) Delete(_ context.Context, id string) error {
	r.g.write(func(d *model.AppData) bool {
		for i := range d.Colleges {
			if d.Colleges[i].ID == id {
				d.Colleges = append(d.Colleges[:i], d.Colleges[i+1:]...)
				return true
			}
		}
		return false
	})
	return nil
}
