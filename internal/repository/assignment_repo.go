package repository

import (
	"context"

	"github.com/chiefpansancolt/college-buddy/internal/model"
)

// AssignmentRepository 作业数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, collegeID, semesterID, classID string, data *model.CreateAssignmentData) (*model.Assignment, error)
	GetByID(ctx context.Context, collegeID, semesterID, classID, id string) (*model.Assignment, error)
	List(ctx context.Context, collegeID, semesterID, classID string) ([]model.Assignment, error)
	Update(ctx context.Context, collegeID, semesterID, classID, id string, patch *model.UpdateAssignmentData) error
	Delete(ctx context.Context, collegeID, semesterID, classID, id string) error
}

type assignmentRepo struct {
	g *graph
}

// locateClass 定位 (collegeID, semesterID, classID)，任一缺失返回对应哨兵错误
func locateClass(d *model.AppData, collegeID, semesterID, classID string) (*model.College, *model.Semester, *model.Class, error) {
	college, semester, err := locateSemester(d, collegeID, semesterID)
	if err != nil {
		return nil, nil, nil, err
	}
	class := findClass(semester, classID)
	if class == nil {
		return nil, nil, nil, ErrClassNotFound
	}
	return college, semester, class, nil
}

// touchAncestors 作业变更不影响学分，只需刷新祖先链时间戳
func touchAncestors(college *model.College, semester *model.Semester, class *model.Class) {
	class.Touch()
	semester.Touch()
	college.Touch()
}

func (r *assignmentRepo) Create(_ context.Context, collegeID, semesterID, classID string, data *model.CreateAssignmentData) (*model.Assignment, error) {
	assignment := model.Assignment{
		BaseEntity:     model.NewBaseEntity(),
		Title:          data.Title,
		Description:    data.Description,
		Type:           data.Type,
		Status:         data.Status,
		Priority:       data.Priority,
		DueDate:        data.DueDate,
		EstimatedHours: data.EstimatedHours,
		ActualHours:    data.ActualHours,
		Points:         data.Points,
		EarnedPoints:   data.EarnedPoints,
		ClassID:        classID,
		Notes:          data.Notes,
		Attachments:    data.Attachments,
		ReminderDate:   data.ReminderDate,
	}

	var err error
	r.g.write(func(d *model.AppData) bool {
		college, semester, class, e := locateClass(d, collegeID, semesterID, classID)
		if e != nil {
			err = e
			return false
		}
		class.Assignments = append(class.Assignments, assignment)
		touchAncestors(college, semester, class)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) GetByID(_ context.Context, collegeID, semesterID, classID, id string) (*model.Assignment, error) {
	var found *model.Assignment
	var err error
	r.g.read(func(d *model.AppData) {
		_, _, class, e := locateClass(d, collegeID, semesterID, classID)
		if e != nil {
			err = e
			return
		}
		found = findAssignment(class, id)
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrAssignmentNotFound
	}
	return found, nil
}

func (r *assignmentRepo) List(_ context.Context, collegeID, semesterID, classID string) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	var err error
	r.g.read(func(d *model.AppData) {
		_, _, class, e := locateClass(d, collegeID, semesterID, classID)
		if e != nil {
			err = e
			return
		}
		if class.Assignments != nil {
			assignments = class.Assignments
		}
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) Update(_ context.Context, collegeID, semesterID, classID, id string, patch *model.UpdateAssignmentData) error {
	var err error
	r.g.write(func(d *model.AppData) bool {
		college, semester, class, e := locateClass(d, collegeID, semesterID, classID)
		if e != nil {
			err = e
			return false
		}
		assignment := findAssignment(class, id)
		if assignment == nil {
			err = ErrAssignmentNotFound
			return false
		}
		if patch.Title != nil {
			assignment.Title = *patch.Title
		}
		if patch.Description != nil {
			assignment.Description = *patch.Description
		}
		if patch.Type != nil {
			assignment.Type = *patch.Type
		}
		if patch.Status != nil {
			assignment.Status = *patch.Status
		}
		if patch.Priority != nil {
			assignment.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			assignment.DueDate = *patch.DueDate
		}
		if patch.EstimatedHours != nil {
			assignment.EstimatedHours = patch.EstimatedHours
		}
		if patch.ActualHours != nil {
			assignment.ActualHours = patch.ActualHours
		}
		if patch.Points != nil {
			assignment.Points = patch.Points
		}
		if patch.EarnedPoints != nil {
			assignment.EarnedPoints = patch.EarnedPoints
		}
		if patch.Notes != nil {
			assignment.Notes = *patch.Notes
		}
		if patch.Attachments != nil {
			assignment.Attachments = patch.Attachments
		}
		if patch.ReminderDate != nil {
			assignment.ReminderDate = patch.ReminderDate
		}
		assignment.Touch()
		touchAncestors(college, semester, class)
		return true
	})
	return err
}

// Delete 删除作业；作业不存在时为空操作，祖先缺失时返回对应哨兵错误
func (r *assignmentRepo) Delete(_ context.Context, collegeID, semesterID, classID, id string) error {
	var err error
	r.g.write(func(d *model.AppData) bool {
		college, semester, class, e := locateClass(d, collegeID, semesterID, classID)
		if e != nil {
			err = e
			return false
		}
		for i := range class.Assignments {
			if class.Assignments[i].ID == id {
				class.Assignments = append(class.Assignments[:i], class.Assignments[i+1:]...)
				touchAncestors(college, semester, class)
				return true
			}
		}
		return false
	})
	return err
}
