package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"    // Supabase auth UUID
	KeyProfileID CtxKey = "ProfileID" // profiles.id of the authenticated user
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
