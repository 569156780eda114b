package mentor

type ListMentorsQuery struct {
	Expertise string `form:"expertise"`
	Company   string `form:"company"`
}

// UpdateProfileRequest uses pointers so that absent fields are left
// untouched while empty strings clear the value.
type UpdateProfileRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Title     *string  `json:"title" validate:"omitempty,max=120"`
	Company   *string  `json:"company" validate:"omitempty,max=120"`
	Bio       *string  `json:"bio" validate:"omitempty,max=2000"`
	Expertise []string `json:"expertise" validate:"omitempty,dive,min=1,max=60"`
	ImageURL  *string  `json:"image_url" validate:"omitempty,url"`
}
