package model

type Notebook struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	CreatedAt string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
