package handler

type ContextKey string

var (
	PrincipalCtx ContextKey = "principal"
	UserInfoCtx  ContextKey = "userInfo"
	AuthorCtx    ContextKey = "author"
	BookTagCtx   ContextKey = "bookTag"
	BookCtx      ContextKey = "book"
	BookImageCtx ContextKey = "bookImage"
	OrderCtx     ContextKey = "order"
)
