package blog

// CanModify is the author check guarding edit and delete of posts and comments.
func CanModify(viewer *User, authorID int) bool {
	return viewer != nil && viewer.ID == authorID
}

// CanEditProfile compares by username, which is unique.
func CanEditProfile(viewer *User, username string) bool {
	return viewer != nil && viewer.Username == username
}
