package models

import (
	"strings"

	"gorm.io/gorm"
)

// Income is money received in a month.
type Income struct {
	DefaultModel
	Name   string `json:"name" example:"Salary" default:""`
	Source string `json:"source" example:"Employer Ltd." default:""`
	Posting
}

func (Income) Self() string {
	return "Income"
}

// BeforeSave trims whitespace from string fields and normalizes the posting.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Source = strings.TrimSpace(i.Source)

	return i.Posting.normalize()
}
