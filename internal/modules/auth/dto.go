package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
