package globals

import (
	"context"
	"os"
)

var (
	Ctx       = context.Background()
	JwtSecret = []byte(os.Getenv("JWT_SECRET"))
)

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
