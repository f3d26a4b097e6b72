package user

import "starwars/internal/domain"

// UserResponse is the public view of a user. The password column never
// leaves the repository layer.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
