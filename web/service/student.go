package service

import (
	"time"

	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/util/common"
	"github.com/Suneetha610/student/util/crypto"
)

// StudentService manages accounts. All mutating operations persist
// immediately; single-record atomicity comes from the store.
type StudentService struct{}

// CreateStudent registers an account. Only the bcrypt hash of password is
// stored. Duplicate roll numbers or emails fail on the unique index; use
// database.IsDuplicate to classify the error.
func (s *StudentService) CreateStudent(student *model.Student, password string) error {
	if student.RollNo == "" {
		return common.NewError("the roll number field is required")
	}
	if student.EmailString() == "" {
		return common.NewError("the email field is required")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	student.Password = hash
	student.IsActive = true

	db := database.GetDB()
	return db.Create(student).Error
}

// CreateSuperStudent registers a staff account. Both flags must arrive as
// true; refusing overrides keeps the operation from silently downgrading.
func (s *StudentService) CreateSuperStudent(student *model.Student, password string) error {
	if !student.IsStaff {
		return common.NewError("super student must have IsStaff=true")
	}
	if !student.IsSuperuser {
		return common.NewError("super student must have IsSuperuser=true")
	}
	return s.CreateStudent(student, password)
}

// GetByRollNo returns nil without error when no such account exists.
func (s *StudentService) GetByRollNo(rollNo string) (*model.Student, error) {
	return s.getOne("roll_no = ?", rollNo)
}

func (s *StudentService) GetByEmail(email string) (*model.Student, error) {
	return s.getOne("email = ?", email)
}

func (s *StudentService) GetById(id int) (*model.Student, error) {
	return s.getOne("id = ?", id)
}

func (s *StudentService) getOne(query string, arg any) (*model.Student, error) {
	db := database.GetDB()
	student := &model.Student{}
	err := db.Model(model.Student{}).Where(query, arg).First(student).Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return student, nil
}

// CheckStudent validates login credentials. It returns nil for an unknown
// roll number, an inactive account or a wrong password alike, so callers
// can only surface one generic message.
func (s *StudentService) CheckStudent(rollNo string, password string) *model.Student {
	student, err := s.GetByRollNo(rollNo)
	if err != nil {
		logger.Warning("check student err:", err)
		return nil
	}
	if student == nil || !student.IsActive {
		return nil
	}
	if !crypto.CheckPasswordHash(student.Password, password) {
		return nil
	}
	return student
}

// MarkLogin stamps the last-login marker. Outstanding reset tokens derive
// from it and stop validating afterwards.
func (s *StudentService) MarkLogin(student *model.Student) error {
	student.LastLogin = time.Now().Unix()
	db := database.GetDB()
	return db.Model(model.Student{}).
		Where("id = ?", student.Id).
		Update("last_login", student.LastLogin).
		Error
}

// UpdatePassword replaces the stored hash. Reset tokens issued against the
// old hash are implicitly invalidated; the caller is responsible for ending
// the account's session.
func (s *StudentService) UpdatePassword(id int, newPassword string) error {
	if newPassword == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(model.Student{}).
		Where("id = ?", id).
		Update("password", hash).
		Error
}

// SetActive soft-disables or re-enables an account. Rows are never deleted,
// preserving the feedback history.
func (s *StudentService) SetActive(id int, active bool) error {
	db := database.GetDB()
	return db.Model(model.Student{}).
		Where("id = ?", id).
		Update("is_active", active).
		Error
}

// Search lists accounts matching q across the given columns, used by the
// admin list page. An empty q lists everything.
func (s *StudentService) Search(q string, fields []string, order string) ([]*model.Student, error) {
	db := database.GetDB().Model(model.Student{})
	if q != "" && len(fields) > 0 {
		like := "%" + q + "%"
		where := database.GetDB().Where(fields[0]+" LIKE ?", like)
		for _, f := range fields[1:] {
			where = where.Or(f+" LIKE ?", like)
		}
		db = db.Where(where)
	}
	if order != "" {
		db = db.Order(order)
	}
	students := make([]*model.Student, 0)
	err := db.Find(&students).Error
	return students, err
}
