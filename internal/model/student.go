package model

// Student 学生表，对应 students
type Student struct {
	StudentID    int    `gorm:"primaryKey;autoIncrement"          json:"student_id"`
	InternalCode string `gorm:"type:varchar(20);not null;unique"  json:"internal_code"`
	FirstName    string `gorm:"type:varchar(100);not null"        json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null"        json:"last_name"`
	BaseModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// FullName 名 + 姓，排名并列时按此字段排序
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
