package request

// ID is the :id path parameter shared by every resource route.
type ID struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Page is the keyset pagination query of list routes.
type Page struct {
	Cursor string `form:"cursor"`
	Num    int64  `form:"num" binding:"omitempty,min=1,max=50"`
}
