package controllers

// Context keys set by the auth middleware.
const (
	ctxUserID   = "userId"
	ctxUserRole = "userRole"
)
