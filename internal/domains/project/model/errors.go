package model

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSlugTaken       = errors.New("a project with this slug already exists")
)
