package users

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	Name      string `json:"name" binding:"required,max=30"`
	LastName  string `json:"last_name" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email,max=50"`
	Biography string `json:"biography" binding:"max=300"`
	Gender    string `json:"gender" binding:"omitempty,len=26"`
	Birthdate string `json:"birthdate" binding:"required,birthdate"`
	UserImg   string `json:"user_img"`
	Role      string `json:"role" binding:"omitempty,len=26"`
	Password  string `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=30"`
	Name      *string `json:"name" binding:"omitempty,max=30"`
	LastName  *string `json:"last_name" binding:"omitempty,max=30"`
	Email     *string `json:"email" binding:"omitempty,email,max=50"`
	Biography *string `json:"biography" binding:"omitempty,max=300"`
	Gender    *string `json:"gender" binding:"omitempty,len=26"`
	Birthdate *string `json:"birthdate" binding:"omitempty,birthdate"`
	UserImg   *string `json:"user_img"`
	Role      *string `json:"role" binding:"omitempty,len=26"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

// Updates flattens the request into store column updates.
func (r UpdateUserRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Username != nil {
		u["username"] = *r.Username
	}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.LastName != nil {
		u["last_name"] = *r.LastName
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Biography != nil {
		u["biography"] = *r.Biography
	}
	if r.Gender != nil {
		u["gender_id"] = *r.Gender
	}
	if r.Birthdate != nil {
		u["birthdate"] = *r.Birthdate
	}
	if r.UserImg != nil {
		u["user_img"] = *r.UserImg
	}
	if r.Role != nil {
		u["role_id"] = *r.Role
	}
	if r.Password != nil {
		u["password"] = *r.Password
	}
	return u
}
