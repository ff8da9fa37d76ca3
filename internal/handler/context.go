package handler

type ContextKey string

var (
	UserCtxKey ContextKey = "user"
)
