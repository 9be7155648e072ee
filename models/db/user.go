package dbmodels

import (
	"office-workflow-backend/models"
)

type User struct {
	BaseModel
	Username    string          `gorm:"type:varchar(150);uniqueIndex" json:"username"`
	Password    string          `gorm:"type:varchar(128)" json:"password"`
	Email       string          `gorm:"type:varchar(255)" json:"email"`
	Role        models.UserRole `gorm:"type:varchar(50)" json:"role"`
	Designation string          `gorm:"type:varchar(255)" json:"designation"`
	EmployeeID  string          `gorm:"type:varchar(50);index" json:"employee_id"`
}
