package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is checked field by field in the service so each
// failure carries its own message.
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ProfileResponse struct {
	AuthResponse
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Avatar     string `json:"avatar,omitempty"`
	ManagerID  string `json:"manager_id,omitempty"`
}

type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

func toAuthResponse(u SessionUser) AuthResponse {
	return AuthResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Position:   u.Position,
		Avatar:     u.Avatar,
		ManagerID:  u.ManagerID,
	}
}
