package models

type Tag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:200"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;size:200"`
}
