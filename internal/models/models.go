package models

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// RoleRank orders roles for minimum-role checks. Unknown roles rank zero
// and never satisfy a requirement.
func RoleRank(role string) int {
	switch role {
	case RoleEmployee:
		return 1
	case RoleManager:
		return 2
	default:
		return 0
	}
}

type Category struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:60;not null"         json:"name"`
	Version uint   `gorm:"not null"                 json:"version"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                     json:"id"`
	Title       string    `gorm:"size:60;not null"                             json:"title"`
	Description string    `gorm:"size:1024"                                    json:"description"`
	Price       float64   `gorm:"not null"                                     json:"price"`
	CategoryID  uint      `gorm:"not null;index"                               json:"category_id"`
	Category    *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Version     uint      `gorm:"not null"                                     json:"version"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"     json:"id"`
	Username     string `gorm:"size:20;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null"                     json:"-"`
	Role         string `gorm:"size:20;not null"             json:"role"`
	Version      uint   `gorm:"not null"                     json:"version"`
}

// All lists the tables managed by the service, in dependency order.
func All() []any {
	return []any{&Category{}, &Product{}, &User{}}
}
