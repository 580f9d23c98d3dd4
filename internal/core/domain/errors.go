package domain

import "errors"

var ErrProjectNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidStatus = errors.New("invalid status")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrSnapshotMissing = errors.New("snapshot missing")
