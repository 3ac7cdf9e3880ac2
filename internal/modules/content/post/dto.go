package post

// PostForm is the new/edit post form payload. Category is a name resolved
// via find-or-insert; Tags is a comma-separated list of tag names.
type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	Category string `form:"category"`
	Tags     string `form:"tags"`
}
